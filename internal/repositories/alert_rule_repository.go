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
	ErrRuleNotFound = errors.New("alert rule not found")
)

type alertRuleRepository struct {
	db *gorm.DB
}

func NewAlertRuleRepository(db *gorm.DB) AlertRuleRepositoryInterface {
	return &alertRuleRepository{
		db: db,
	}
}

func (r *alertRuleRepository) Create(ctx context.Context, rule *models.AlertRule) error {
	if rule == nil {
		return errors.New("alert rule cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create alert rule: %w", err)
	}
	return nil
}

func (r *alertRuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AlertRule, error) {
	var rule models.AlertRule
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get alert rule: %w", err)
	}
	return &rule, nil
}

func (r *alertRuleRepository) ListByUser(ctx context.Context, userID uuid.UUID, includeDeactivated bool) ([]models.AlertRule, error) {
	var rules []models.AlertRule

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeDeactivated {
		query = query.Where("state = ?", models.RuleStateActive)
	}

	if err := query.Order("created_at ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list alert rules: %w", err)
	}
	return rules, nil
}

// ListActiveByUser orders by creation so the first matching rule of a type wins
func (r *alertRuleRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.AlertRule, error) {
	return r.ListByUser(ctx, userID, false)
}

func (r *alertRuleRepository) Update(ctx context.Context, rule *models.AlertRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(rule).Select("*").Updates(rule)
	if result.Error != nil {
		return fmt.Errorf("failed to update alert rule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}
