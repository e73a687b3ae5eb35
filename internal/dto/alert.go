package dto

import "fintrack/internal/models"

// Alert Rule Request DTOs

// CreateRuleRequest creates an alert rule. HIGH_AMOUNT may omit the threshold
// to use the service default.
type CreateRuleRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=255"`
	Description     string `json:"description" validate:"omitempty,max=1000"`
	RuleType        string `json:"ruleType" validate:"required,rule_type"`
	ThresholdAmount string `json:"thresholdAmount" validate:"omitempty,money"`
	Category        string `json:"category" validate:"omitempty,max=100"`
}

// UpdateRuleRequest changes the mutable fields of a rule. Empty fields are left as they are.
type UpdateRuleRequest struct {
	Name            string `json:"name" validate:"omitempty,min=1,max=255"`
	Description     string `json:"description" validate:"omitempty,max=1000"`
	ThresholdAmount string `json:"thresholdAmount" validate:"omitempty,money"`
	Category        string `json:"category" validate:"omitempty,max=100"`
}

type RuleListParams struct {
	IncludeDeactivated bool `query:"includeDeactivated"`
}

// Alert Response DTOs

type ListAlertsResponse struct {
	Alerts     []models.AlertHistory `json:"alerts"`
	Pagination PaginationInfo        `json:"pagination"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type ListRulesResponse struct {
	Rules []models.AlertRule `json:"rules"`
}
