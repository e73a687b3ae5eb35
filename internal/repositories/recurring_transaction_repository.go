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

var ErrRecurringNotFound = errors.New("recurring transaction not found")

type recurringTransactionRepository struct {
	db *gorm.DB
}

func NewRecurringTransactionRepository(db *gorm.DB) RecurringTransactionRepositoryInterface {
	return &recurringTransactionRepository{db: db}
}

func (r *recurringTransactionRepository) Create(ctx context.Context, recurring *models.RecurringTransaction) error {
	if recurring == nil {
		return errors.New("recurring transaction cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(recurring).Error; err != nil {
		return fmt.Errorf("failed to create recurring transaction: %w", err)
	}
	return nil
}

func (r *recurringTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringTransaction, error) {
	var recurring models.RecurringTransaction
	if err := r.db.WithContext(ctx).First(&recurring, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecurringNotFound
		}
		return nil, fmt.Errorf("failed to get recurring transaction: %w", err)
	}
	return &recurring, nil
}

// ListByUser pages through a user's schedules, soonest occurrence first
func (r *recurringTransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.RecurringTransaction, int64, error) {
	var schedules []models.RecurringTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RecurringTransaction{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recurring transactions: %w", err)
	}

	if err := query.
		Order("active DESC").
		Order("next_occurrence ASC").
		Offset(offset).
		Limit(limit).
		Find(&schedules).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	return schedules, total, nil
}

func (r *recurringTransactionRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]models.RecurringTransaction, error) {
	var due []models.RecurringTransaction
	query := r.db.WithContext(ctx).
		Where("active = ? AND next_occurrence <= ?", true, now).
		Where("end_date IS NULL OR end_date >= next_occurrence").
		Order("next_occurrence ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&due).Error; err != nil {
		return nil, fmt.Errorf("failed to list due recurring transactions: %w", err)
	}
	return due, nil
}

func (r *recurringTransactionRepository) Update(ctx context.Context, recurring *models.RecurringTransaction) error {
	result := r.db.WithContext(ctx).Model(recurring).Select("*").Updates(recurring)
	if result.Error != nil {
		return fmt.Errorf("failed to update recurring transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurringNotFound
	}
	return nil
}

func (r *recurringTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RecurringTransaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recurring transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurringNotFound
	}
	return nil
}
