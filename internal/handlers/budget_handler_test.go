package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	budgetService *service_mocks.MockBudgetServiceInterface
	goalService   *service_mocks.MockGoalServiceInterface
	handler       *BudgetHandler
	echo          *echo.Echo
	testUserID    uuid.UUID
}

func (s *BudgetHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.goalService = service_mocks.NewMockGoalServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.budgetService, s.goalService)
	s.echo = newTestEcho()
	s.testUserID = uuid.New()
}

func (s *BudgetHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerSuite))
}

func (s *BudgetHandlerSuite) withID(c echo.Context, id uuid.UUID) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	return c
}

func (s *BudgetHandlerSuite) TestUpsertBudget_Success() {
	reqBody := dto.UpsertBudgetRequest{Category: "Dining", Amount: "300.00", Month: "2024-03"}

	s.budgetService.EXPECT().
		UpsertBudget(gomock.Any(), s.testUserID, &reqBody).
		Return(&models.Budget{
			ID:       uuid.New(),
			UserID:   s.testUserID,
			Category: "Dining",
			Amount:   decimal.RequireFromString("300.00"),
			Month:    "2024-03",
			State:    models.BudgetStateActive,
		}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPut, "/api/v1/budgets", reqBody, s.testUserID)

	s.NoError(s.handler.UpsertBudget(c))
	s.Equal(http.StatusOK, rec.Code)

	var budget models.Budget
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &budget))
	s.Equal("2024-03", budget.Month)
}

func (s *BudgetHandlerSuite) TestUpsertBudget_RejectsBadInput() {
	tests := []struct {
		name string
		body dto.UpsertBudgetRequest
	}{
		{"zero amount", dto.UpsertBudgetRequest{Category: "Dining", Amount: "0"}},
		{"three decimals", dto.UpsertBudgetRequest{Category: "Dining", Amount: "1.005"}},
		{"bad month", dto.UpsertBudgetRequest{Category: "Dining", Amount: "10", Month: "2024-3"}},
		{"missing category", dto.UpsertBudgetRequest{Amount: "10"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, _ := newAuthedContext(s.echo, http.MethodPut, "/api/v1/budgets", tt.body, s.testUserID)

			err := s.handler.UpsertBudget(c)
			s.IsType(validator.ValidationErrors{}, err)
		})
	}
}

func (s *BudgetHandlerSuite) TestUpsertBudget_ModelErrors() {
	s.budgetService.EXPECT().
		UpsertBudget(gomock.Any(), s.testUserID, gomock.Any()).
		Return(nil, models.ErrInvalidBudgetMonth)

	c, rec := newAuthedContext(s.echo, http.MethodPut, "/api/v1/budgets",
		dto.UpsertBudgetRequest{Category: "Dining", Amount: "10.00"}, s.testUserID)

	s.NoError(s.handler.UpsertBudget(c))
	s.Equal("BUDGET_002", decodeError(rec).Error.Code)
}

func (s *BudgetHandlerSuite) TestListBudgets() {
	s.Run("month filter", func() {
		s.budgetService.EXPECT().
			ListBudgets(gomock.Any(), s.testUserID, "2024-02").
			Return(&dto.ListBudgetsResponse{Month: "2024-02", Budgets: []models.Budget{}}, nil)

		c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/budgets?month=2024-02", nil, s.testUserID)
		s.NoError(s.handler.ListBudgets(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid month", func() {
		c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/budgets?month=Feb", nil, s.testUserID)
		s.NoError(s.handler.ListBudgets(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("BUDGET_002", decodeError(rec).Error.Code)
	})
}

func (s *BudgetHandlerSuite) TestDeactivateBudget() {
	budgetID := uuid.New()

	s.Run("success", func() {
		s.budgetService.EXPECT().DeactivateBudget(gomock.Any(), s.testUserID, budgetID).Return(nil)

		c, rec := newAuthedContext(s.echo, http.MethodDelete, "/api/v1/budgets/"+budgetID.String(), nil, s.testUserID)
		s.NoError(s.handler.DeactivateBudget(s.withID(c, budgetID)))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found", func() {
		s.budgetService.EXPECT().DeactivateBudget(gomock.Any(), s.testUserID, budgetID).Return(services.ErrBudgetNotFound)

		c, rec := newAuthedContext(s.echo, http.MethodDelete, "/api/v1/budgets/"+budgetID.String(), nil, s.testUserID)
		s.NoError(s.handler.DeactivateBudget(s.withID(c, budgetID)))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("BUDGET_001", decodeError(rec).Error.Code)
	})
}

func (s *BudgetHandlerSuite) TestCreateGoal_ReturnsProgress() {
	reqBody := dto.CreateGoalRequest{Name: "Emergency Fund", TargetAmount: "10000.00", CurrentAmount: "2500.00"}
	goalID := uuid.New()

	s.goalService.EXPECT().
		CreateGoal(gomock.Any(), s.testUserID, &reqBody).
		Return(&models.SavingsGoal{
			ID:            goalID,
			UserID:        s.testUserID,
			Name:          reqBody.Name,
			TargetAmount:  decimal.RequireFromString("10000.00"),
			CurrentAmount: decimal.RequireFromString("2500.00"),
		}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/v1/goals", reqBody, s.testUserID)

	s.NoError(s.handler.CreateGoal(c))
	s.Equal(http.StatusCreated, rec.Code)

	var progress models.GoalProgress
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &progress))
	s.Equal(goalID.String(), progress.ID)
	s.Equal(25, progress.Progress)
	s.NotEmpty(progress.Color)
}

func (s *BudgetHandlerSuite) TestListGoals() {
	s.goalService.EXPECT().
		ListGoals(gomock.Any(), s.testUserID).
		Return([]models.SavingsGoal{
			{ID: uuid.New(), Name: "Vacation", TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(1500)},
			{ID: uuid.New(), Name: "Car", TargetAmount: decimal.NewFromInt(2000)},
		}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/goals", nil, s.testUserID)

	s.NoError(s.handler.ListGoals(c))

	var resp dto.ListGoalsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Goals, 2)
	s.Equal(150, resp.Goals[0].Progress)
	s.Equal(0, resp.Goals[1].Progress)
	s.NotEqual(resp.Goals[0].Color, resp.Goals[1].Color)
}

func (s *BudgetHandlerSuite) TestGoalNotFound() {
	goalID := uuid.New()
	s.goalService.EXPECT().GetGoal(gomock.Any(), s.testUserID, goalID).Return(nil, services.ErrGoalNotFound)
	s.goalService.EXPECT().DeleteGoal(gomock.Any(), s.testUserID, goalID).Return(services.ErrGoalNotFound)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/goals/"+goalID.String(), nil, s.testUserID)
	s.NoError(s.handler.GetGoal(s.withID(c, goalID)))
	s.Equal("GOAL_001", decodeError(rec).Error.Code)

	c, rec = newAuthedContext(s.echo, http.MethodDelete, "/api/v1/goals/"+goalID.String(), nil, s.testUserID)
	s.NoError(s.handler.DeleteGoal(s.withID(c, goalID)))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *BudgetHandlerSuite) TestUpdateGoal() {
	goalID := uuid.New()
	reqBody := dto.UpdateGoalRequest{CurrentAmount: "750.00"}

	s.goalService.EXPECT().
		UpdateGoal(gomock.Any(), s.testUserID, goalID, &reqBody).
		Return(&models.SavingsGoal{
			ID:            goalID,
			Name:          "Laptop",
			TargetAmount:  decimal.NewFromInt(1500),
			CurrentAmount: decimal.NewFromInt(750),
		}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPut, "/api/v1/goals/"+goalID.String(), reqBody, s.testUserID)

	s.NoError(s.handler.UpdateGoal(s.withID(c, goalID)))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"progress":50`)
}

func (s *BudgetHandlerSuite) TestUpdateGoal_InvalidTarget() {
	goalID := uuid.New()
	s.goalService.EXPECT().
		UpdateGoal(gomock.Any(), s.testUserID, goalID, gomock.Any()).
		Return(nil, models.ErrInvalidGoalTarget)

	c, rec := newAuthedContext(s.echo, http.MethodPut, "/api/v1/goals/"+goalID.String(),
		dto.UpdateGoalRequest{Name: "Laptop"}, s.testUserID)

	s.NoError(s.handler.UpdateGoal(s.withID(c, goalID)))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("GOAL_002", decodeError(rec).Error.Code)
}
