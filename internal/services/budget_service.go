package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
	ErrInvalidMoney   = errors.New("invalid monetary amount")
)

type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	now        func() time.Time
}

func NewBudgetService(budgetRepo repositories.BudgetRepositoryInterface) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
		now:        time.Now,
	}
}

// UpsertBudget sets the active budget for a category and month, the current
// month when none is given
func (s *budgetService) UpsertBudget(ctx context.Context, userID uuid.UUID, req *dto.UpsertBudgetRequest) (*models.Budget, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	month := req.Month
	if month == "" {
		month = models.MonthOf(s.now())
	}

	budget, err := s.budgetRepo.Upsert(ctx, &models.Budget{
		UserID:   userID,
		Category: strings.TrimSpace(req.Category),
		Amount:   amount,
		Month:    month,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidBudgetMonth) || errors.Is(err, models.ErrInvalidBudgetAmount) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID uuid.UUID, month string) (*dto.ListBudgetsResponse, error) {
	budgets, err := s.budgetRepo.ListByUser(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}

	return &dto.ListBudgetsResponse{Month: month, Budgets: budgets}, nil
}

// DeactivateBudget keeps the row for history. Deactivating twice succeeds.
func (s *budgetService) DeactivateBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to get budget: %w", err)
	}
	if budget.UserID != userID {
		return ErrBudgetNotFound
	}

	if !budget.Deactivate() {
		return nil
	}

	if err := s.budgetRepo.Update(ctx, budget); err != nil {
		return fmt.Errorf("failed to deactivate budget: %w", err)
	}
	return nil
}

// parseAmount reads a request amount rounded to cents. Validation tags have
// already checked the format; this guards direct callers.
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidMoney, value)
	}
	return amount.Round(2), nil
}
