package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAlertNotFound = errors.New("alert not found")
)

// AlertHistoryRepository handles database operations for emitted alerts
type AlertHistoryRepository struct {
	db *gorm.DB
}

// NewAlertHistoryRepository creates a new alert history repository
func NewAlertHistoryRepository(db *gorm.DB) AlertHistoryRepositoryInterface {
	return &AlertHistoryRepository{
		db: db,
	}
}

// Create appends an alert
func (r *AlertHistoryRepository) Create(ctx context.Context, alert *models.AlertHistory) error {
	if alert == nil {
		return errors.New("alert cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	return nil
}

// GetByID retrieves an alert by its ID
func (r *AlertHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AlertHistory, error) {
	var alert models.AlertHistory
	if err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert by ID: %w", err)
	}

	return &alert, nil
}

// ListByUser returns one page of a user's alerts, newest first
func (r *AlertHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.AlertHistory, int64, error) {
	var alerts []models.AlertHistory
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AlertHistory{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&alerts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get alerts: %w", err)
	}

	return alerts, total, nil
}

// ListUnread returns a user's unread alerts, newest first
func (r *AlertHistoryRepository) ListUnread(ctx context.Context, userID uuid.UUID) ([]models.AlertHistory, error) {
	var alerts []models.AlertHistory

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to get unread alerts: %w", err)
	}

	return alerts, nil
}

// CountUnread counts a user's unread alerts
func (r *AlertHistoryRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.AlertHistory{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}

	return count, nil
}

// MarkRead sets the read flag; marking an already read alert keeps its original read time
func (r *AlertHistoryRepository) MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.AlertHistory{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark alert read: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.AlertHistory{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check alert: %w", err)
		}
		if count == 0 {
			return ErrAlertNotFound
		}
	}

	return nil
}

// MarkAllRead marks every unread alert of the user and returns how many changed
func (r *AlertHistoryRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.AlertHistory{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": at,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark alerts read: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// ExistsSince reports whether an alert of the type was raised for the category at or after since
func (r *AlertHistoryRepository) ExistsSince(ctx context.Context, userID uuid.UUID, category string, alertType models.AlertType, since time.Time) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.AlertHistory{}).
		Where("user_id = ? AND category = ? AND alert_type = ? AND created_at >= ?", userID, category, alertType, since).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existing alerts: %w", err)
	}

	return count > 0, nil
}
