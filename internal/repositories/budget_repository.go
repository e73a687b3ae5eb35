package repositories

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

func (r *budgetRepository) Upsert(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	if budget == nil {
		return nil, errors.New("budget cannot be nil")
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	var saved models.Budget
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND category = ? AND month = ? AND state = ?",
			budget.UserID, budget.Category, budget.Month, models.BudgetStateActive).
			First(&saved).Error

		switch {
		case err == nil:
			saved.Amount = budget.Amount
			return tx.Save(&saved).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = *budget
			saved.State = models.BudgetStateActive
			return tx.Create(&saved).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return &saved, nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).First(&budget, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// ListByUser returns the user's active budgets, for one month when month is set
func (r *budgetRepository) ListByUser(ctx context.Context, userID uuid.UUID, month string) ([]models.Budget, error) {
	var budgets []models.Budget

	query := r.db.WithContext(ctx).Where("user_id = ? AND state = ?", userID, models.BudgetStateActive)
	if month != "" {
		query = query.Where("month = ?", month)
	}

	if err := query.Order("month DESC, category ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) FindActive(ctx context.Context, userID uuid.UUID, category, month string) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND month = ? AND state = ?", userID, category, month, models.BudgetStateActive).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) FindLatestActive(ctx context.Context, userID uuid.UUID, category string) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND state = ?", userID, category, models.BudgetStateActive).
		Order("month DESC, updated_at DESC").
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to find latest budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) ListActiveForMonth(ctx context.Context, month string) ([]models.Budget, error) {
	var budgets []models.Budget
	err := r.db.WithContext(ctx).
		Where("month = ? AND state = ?", month, models.BudgetStateActive).
		Order("user_id ASC, category ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for month: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	result := r.db.WithContext(ctx).Model(budget).Select("*").Updates(budget)
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
