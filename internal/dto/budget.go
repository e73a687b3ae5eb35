package dto

import "fintrack/internal/models"

// Budget Request DTOs

// UpsertBudgetRequest sets the budget for a category and month. Month
// defaults to the current month.
type UpsertBudgetRequest struct {
	Category string `json:"category" validate:"required,min=1,max=100"`
	Amount   string `json:"amount" validate:"required,money"`
	Month    string `json:"month" validate:"omitempty,budget_month"`
}

type BudgetListParams struct {
	Month string `query:"month" validate:"omitempty,budget_month"`
}

// Goal Request DTOs

type CreateGoalRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	TargetAmount  string `json:"targetAmount" validate:"required,money"`
	CurrentAmount string `json:"currentAmount" validate:"omitempty,money_nonneg"`
	Deadline      string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Category      string `json:"category" validate:"omitempty,max=100"`
}

type UpdateGoalRequest struct {
	Name          string `json:"name" validate:"omitempty,min=1,max=255"`
	TargetAmount  string `json:"targetAmount" validate:"omitempty,money"`
	CurrentAmount string `json:"currentAmount" validate:"omitempty,money_nonneg"`
	Deadline      string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Category      string `json:"category" validate:"omitempty,max=100"`
}

// Notification contact

type UpdateContactRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// Response DTOs

type ListBudgetsResponse struct {
	Month   string          `json:"month"`
	Budgets []models.Budget `json:"budgets"`
}

type ListGoalsResponse struct {
	Goals []models.GoalProgress `json:"goals"`
}
