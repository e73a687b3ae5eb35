package services

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type repositoryTransactionSource struct {
	repo repositories.TransactionRepositoryInterface
}

// NewRepositoryTransactionSource serves report transactions from the local store
func NewRepositoryTransactionSource(repo repositories.TransactionRepositoryInterface) TransactionSource {
	return &repositoryTransactionSource{repo: repo}
}

func (s *repositoryTransactionSource) Transactions(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.Transaction, error) {
	from, to := period.Bounds()
	transactions, err := s.repo.GetByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

type repositoryBudgetSource struct {
	repo repositories.BudgetRepositoryInterface
}

// NewRepositoryBudgetSource resolves a category budget as the active budget
// for the requested month, else the most recent active budget for the
// category. Neither existing is reported as not found.
func NewRepositoryBudgetSource(repo repositories.BudgetRepositoryInterface) BudgetSource {
	return &repositoryBudgetSource{repo: repo}
}

func (s *repositoryBudgetSource) Budget(ctx context.Context, userID uuid.UUID, category, month string) (decimal.Decimal, bool, error) {
	budget, err := s.repo.FindActive(ctx, userID, category, month)
	if err == nil {
		return budget.Amount, true, nil
	}
	if !errors.Is(err, repositories.ErrBudgetNotFound) {
		return decimal.Zero, false, fmt.Errorf("failed to find budget: %w", err)
	}

	budget, err = s.repo.FindLatestActive(ctx, userID, category)
	if err == nil {
		return budget.Amount, true, nil
	}
	if errors.Is(err, repositories.ErrBudgetNotFound) {
		return decimal.Zero, false, nil
	}
	return decimal.Zero, false, fmt.Errorf("failed to find latest budget: %w", err)
}

type repositoryGoalSource struct {
	repo repositories.SavingsGoalRepositoryInterface
}

func NewRepositoryGoalSource(repo repositories.SavingsGoalRepositoryInterface) GoalSource {
	return &repositoryGoalSource{repo: repo}
}

func (s *repositoryGoalSource) Goals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	goals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return goals, nil
}
