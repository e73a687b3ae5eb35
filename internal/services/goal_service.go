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

const goalDeadlineLayout = "2006-01-02"

var ErrGoalNotFound = errors.New("savings goal not found")

type goalService struct {
	goalRepo repositories.SavingsGoalRepositoryInterface
}

func NewGoalService(goalRepo repositories.SavingsGoalRepositoryInterface) GoalServiceInterface {
	return &goalService{goalRepo: goalRepo}
}

func (s *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*models.SavingsGoal, error) {
	target, err := parseAmount(req.TargetAmount)
	if err != nil {
		return nil, err
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          strings.TrimSpace(req.Name),
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Category:      strings.TrimSpace(req.Category),
	}

	if req.CurrentAmount != "" {
		if goal.CurrentAmount, err = parseAmount(req.CurrentAmount); err != nil {
			return nil, err
		}
	}
	if goal.Deadline, err = parseDeadline(req.Deadline); err != nil {
		return nil, err
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		goals = []models.SavingsGoal{}
	}
	return goals, nil
}

func (s *goalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.SavingsGoal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*models.SavingsGoal, error) {
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		goal.Name = name
	}
	if req.TargetAmount != "" {
		if goal.TargetAmount, err = parseAmount(req.TargetAmount); err != nil {
			return nil, err
		}
	}
	if req.CurrentAmount != "" {
		if goal.CurrentAmount, err = parseAmount(req.CurrentAmount); err != nil {
			return nil, err
		}
	}
	if req.Deadline != "" {
		if goal.Deadline, err = parseDeadline(req.Deadline); err != nil {
			return nil, err
		}
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		goal.Category = category
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	if _, err := s.GetGoal(ctx, userID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.Delete(ctx, goalID); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

func validateGoal(goal *models.SavingsGoal) error {
	if goal.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: current amount cannot be negative", ErrInvalidMoney)
	}
	return goal.Validate()
}

func parseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	deadline, err := time.Parse(goalDeadlineLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: %w", value, err)
	}
	return &deadline, nil
}
