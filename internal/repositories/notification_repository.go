package repositories

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotificationLogNotFound = errors.New("notification log not found")
	ErrContactNotFound         = errors.New("notification contact not found")
)

type notificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) NotificationLogRepositoryInterface {
	return &notificationLogRepository{
		db: db,
	}
}

func (r *notificationLogRepository) Create(ctx context.Context, entry *models.NotificationLog) error {
	if entry == nil {
		return errors.New("notification log cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create notification log: %w", err)
	}
	return nil
}

func (r *notificationLogRepository) Update(ctx context.Context, entry *models.NotificationLog) error {
	result := r.db.WithContext(ctx).Model(entry).Select("*").Updates(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationLogNotFound
	}
	return nil
}

func (r *notificationLogRepository) ListByAlert(ctx context.Context, alertID uuid.UUID) ([]models.NotificationLog, error) {
	var entries []models.NotificationLog
	if err := r.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list notification logs: %w", err)
	}
	return entries, nil
}

type notificationContactRepository struct {
	db *gorm.DB
}

func NewNotificationContactRepository(db *gorm.DB) NotificationContactRepositoryInterface {
	return &notificationContactRepository{
		db: db,
	}
}

func (r *notificationContactRepository) Upsert(ctx context.Context, contact *models.NotificationContact) error {
	if contact == nil {
		return errors.New("notification contact cannot be nil")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
	}).Create(contact).Error
	if err != nil {
		return fmt.Errorf("failed to save notification contact: %w", err)
	}
	return nil
}

func (r *notificationContactRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.NotificationContact, error) {
	var contact models.NotificationContact
	if err := r.db.WithContext(ctx).First(&contact, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get notification contact: %w", err)
	}
	return &contact, nil
}
