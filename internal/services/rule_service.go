package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var ErrRuleNotFound = errors.New("alert rule not found")

type ruleService struct {
	ruleRepo repositories.AlertRuleRepositoryInterface
	events   EventLoggerInterface
}

func NewRuleService(ruleRepo repositories.AlertRuleRepositoryInterface, events EventLoggerInterface) RuleServiceInterface {
	return &ruleService{
		ruleRepo: ruleRepo,
		events:   events,
	}
}

func (s *ruleService) CreateRule(ctx context.Context, userID uuid.UUID, req *dto.CreateRuleRequest) (*models.AlertRule, error) {
	rule := &models.AlertRule{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		RuleType:    models.RuleType(strings.ToUpper(req.RuleType)),
		Category:    strings.TrimSpace(req.Category),
		State:       models.RuleStateActive,
	}

	if req.ThresholdAmount != "" {
		threshold, err := parseAmount(req.ThresholdAmount)
		if err != nil {
			return nil, err
		}
		rule.ThresholdAmount = &threshold
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create alert rule: %w", err)
	}

	return rule, nil
}

func (s *ruleService) ListRules(ctx context.Context, userID uuid.UUID, includeDeactivated bool) ([]models.AlertRule, error) {
	rules, err := s.ruleRepo.ListByUser(ctx, userID, includeDeactivated)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert rules: %w", err)
	}
	if rules == nil {
		rules = []models.AlertRule{}
	}
	return rules, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, userID, ruleID uuid.UUID, req *dto.UpdateRuleRequest) (*models.AlertRule, error) {
	rule, err := s.ownedRule(ctx, userID, ruleID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		rule.Name = name
	}
	if req.Description != "" {
		rule.Description = req.Description
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		rule.Category = category
	}
	if req.ThresholdAmount != "" {
		threshold, err := parseAmount(req.ThresholdAmount)
		if err != nil {
			return nil, err
		}
		rule.ThresholdAmount = &threshold
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := s.save(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// DeactivateRule is idempotent on an owned rule
func (s *ruleService) DeactivateRule(ctx context.Context, userID, ruleID uuid.UUID) (*models.AlertRule, error) {
	return s.transition(ctx, userID, ruleID, (*models.AlertRule).Deactivate)
}

// ActivateRule is idempotent on an owned rule
func (s *ruleService) ActivateRule(ctx context.Context, userID, ruleID uuid.UUID) (*models.AlertRule, error) {
	return s.transition(ctx, userID, ruleID, (*models.AlertRule).Activate)
}

func (s *ruleService) transition(ctx context.Context, userID, ruleID uuid.UUID, apply func(*models.AlertRule) bool) (*models.AlertRule, error) {
	rule, err := s.ownedRule(ctx, userID, ruleID)
	if err != nil {
		return nil, err
	}

	oldState := rule.State
	if !apply(rule) {
		return rule, nil
	}

	if err := s.save(ctx, rule); err != nil {
		return nil, err
	}

	s.events.LogRuleStateChange(ctx, rule.ID, oldState, rule.State)
	return rule, nil
}

// ownedRule hides rules of other users behind the same not-found error
func (s *ruleService) ownedRule(ctx context.Context, userID, ruleID uuid.UUID) (*models.AlertRule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, repositories.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get alert rule: %w", err)
	}
	if rule.UserID != userID {
		return nil, ErrRuleNotFound
	}
	return rule, nil
}

func (s *ruleService) save(ctx context.Context, rule *models.AlertRule) error {
	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		if errors.Is(err, repositories.ErrRuleNotFound) {
			return ErrRuleNotFound
		}
		return fmt.Errorf("failed to update alert rule: %w", err)
	}
	return nil
}
