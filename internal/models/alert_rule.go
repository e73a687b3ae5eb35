package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RuleType string

const (
	RuleTypeHighAmount           RuleType = "HIGH_AMOUNT"
	RuleTypeDailyLimitExceeded   RuleType = "DAILY_LIMIT_EXCEEDED"
	RuleTypeUnusualCategory      RuleType = "UNUSUAL_CATEGORY"
	RuleTypeDuplicateTransaction RuleType = "DUPLICATE_TRANSACTION"
	RuleTypeBudgetWarning        RuleType = "BUDGET_WARNING"
)

// RuleState replaces a soft-delete flag: rules are never physically removed,
// only moved between ACTIVE and DEACTIVATED.
type RuleState string

const (
	RuleStateActive      RuleState = "ACTIVE"
	RuleStateDeactivated RuleState = "DEACTIVATED"
)

var (
	ErrInvalidRuleType       = errors.New("invalid alert rule type")
	ErrRuleThresholdRequired = errors.New("threshold amount is required for this rule type")
	ErrRuleCategoryRequired  = errors.New("category is required for this rule type")
)

func AllRuleTypes() []RuleType {
	return []RuleType{
		RuleTypeHighAmount,
		RuleTypeDailyLimitExceeded,
		RuleTypeUnusualCategory,
		RuleTypeDuplicateTransaction,
		RuleTypeBudgetWarning,
	}
}

func IsValidRuleType(ruleType string) bool {
	for _, rt := range AllRuleTypes() {
		if string(rt) == ruleType {
			return true
		}
	}
	return false
}

type AlertRule struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index:idx_alert_rules_user_state,priority:1" json:"user_id"`
	Name            string           `gorm:"type:varchar(255);not null" json:"name"`
	Description     string           `gorm:"type:text" json:"description,omitempty"`
	RuleType        RuleType         `gorm:"type:varchar(40);not null" json:"rule_type"`
	ThresholdAmount *decimal.Decimal `gorm:"type:decimal(15,2)" json:"threshold_amount,omitempty"`
	Category        string           `gorm:"type:varchar(100)" json:"category,omitempty"`
	State           RuleState        `gorm:"type:varchar(20);not null;index:idx_alert_rules_user_state,priority:2" json:"state"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
}

func (r *AlertRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.State == "" {
		r.State = RuleStateActive
	}
	return r.Validate()
}

// Validate checks the per-type requirements. HIGH_AMOUNT may omit the
// threshold, in which case the service default applies.
func (r *AlertRule) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if !IsValidRuleType(string(r.RuleType)) {
		return ErrInvalidRuleType
	}

	switch r.RuleType {
	case RuleTypeDailyLimitExceeded:
		if r.ThresholdAmount == nil || !r.ThresholdAmount.IsPositive() {
			return ErrRuleThresholdRequired
		}
	case RuleTypeUnusualCategory, RuleTypeBudgetWarning:
		if r.Category == "" {
			return ErrRuleCategoryRequired
		}
	}

	if r.ThresholdAmount != nil && r.ThresholdAmount.IsNegative() {
		return ErrRuleThresholdRequired
	}

	return nil
}

func (r *AlertRule) IsActive() bool {
	return r.State == RuleStateActive
}

// Deactivate reports whether the state changed
func (r *AlertRule) Deactivate() bool {
	if r.State == RuleStateDeactivated {
		return false
	}
	r.State = RuleStateDeactivated
	return true
}

// Activate reports whether the state changed
func (r *AlertRule) Activate() bool {
	if r.State == RuleStateActive {
		return false
	}
	r.State = RuleStateActive
	return true
}

func (r *AlertRule) TableName() string {
	return "alert_rules"
}
