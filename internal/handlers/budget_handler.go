package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler serves monthly category budgets and savings goals
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	goalService   services.GoalServiceInterface
}

func NewBudgetHandler(budgetService services.BudgetServiceInterface, goalService services.GoalServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		goalService:   goalService,
	}
}

// UpsertBudget sets the caller's budget for a category and month
// @Summary Create or replace a budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertBudgetRequest true "Budget"
// @Success 200 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, BUDGET_002 or BUDGET_003"
// @Router /budgets [put]
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.UpsertBudget(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidBudgetMonth):
			return SendError(c, apierrors.BudgetInvalidMonth, apierrors.WithDetails(err.Error()))
		case errors.Is(err, models.ErrInvalidBudgetAmount), errors.Is(err, services.ErrInvalidMoney):
			return SendError(c, apierrors.BudgetInvalidAmount, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// ListBudgets returns the active budgets of a month, the current one by default
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	params := dto.BudgetListParams{Month: c.QueryParam("month")}
	if err := c.Validate(params); err != nil {
		return SendError(c, apierrors.BudgetInvalidMonth, apierrors.WithDetails("month must be formatted as YYYY-MM"))
	}

	response, err := h.budgetService.ListBudgets(c.Request().Context(), userID, params.Month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeactivateBudget(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetService.DeactivateBudget(c.Request().Context(), userID, budgetID); err != nil {
		if errors.Is(err, services.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateGoal creates a savings goal
// @Summary Create savings goal
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal"
// @Success 201 {object} models.GoalProgress
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or GOAL_002"
// @Router /goals [post]
func (h *BudgetHandler) CreateGoal(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), userID, &req)
	if err != nil {
		return sendGoalError(c, err)
	}

	return c.JSON(http.StatusCreated, goalResponse(goal))
}

// ListGoals returns every goal with its progress
// @Router /goals [get]
func (h *BudgetHandler) ListGoals(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goals, err := h.goalService.ListGoals(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: services.GoalProgressList(goals)})
}

// @Router /goals/{id} [get]
func (h *BudgetHandler) GetGoal(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goalService.GetGoal(c.Request().Context(), userID, goalID)
	if err != nil {
		return sendGoalError(c, err)
	}

	return c.JSON(http.StatusOK, goalResponse(goal))
}

// @Router /goals/{id} [put]
func (h *BudgetHandler) UpdateGoal(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid goal ID"))
	}

	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.UpdateGoal(c.Request().Context(), userID, goalID, &req)
	if err != nil {
		return sendGoalError(c, err)
	}

	return c.JSON(http.StatusOK, goalResponse(goal))
}

// @Router /goals/{id} [delete]
func (h *BudgetHandler) DeleteGoal(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid goal ID"))
	}

	if err := h.goalService.DeleteGoal(c.Request().Context(), userID, goalID); err != nil {
		return sendGoalError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// goalResponse presents a single goal the way the goal list does, with the
// first palette color
func goalResponse(goal *models.SavingsGoal) models.GoalProgress {
	return services.GoalProgressList([]models.SavingsGoal{*goal})[0]
}

func sendGoalError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrGoalNotFound):
		return SendError(c, apierrors.GoalNotFound)
	case errors.Is(err, models.ErrInvalidGoalTarget), errors.Is(err, services.ErrInvalidMoney):
		return SendError(c, apierrors.GoalInvalidTarget, apierrors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
