package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetState is the lifecycle of a budget row. Deactivated budgets are kept
// for history and ignored by the report and scheduler lookups.
type BudgetState string

const (
	BudgetStateActive      BudgetState = "ACTIVE"
	BudgetStateDeactivated BudgetState = "DEACTIVATED"

	BudgetMonthLayout = "2006-01"
)

var (
	ErrInvalidBudgetMonth  = errors.New("budget month must be formatted as YYYY-MM")
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
)

type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_user_category_month,priority:1" json:"user_id"`
	Category  string          `gorm:"type:varchar(100);not null;index:idx_budgets_user_category_month,priority:2" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Month     string          `gorm:"type:varchar(7);not null;index:idx_budgets_user_category_month,priority:3" json:"month"`
	State     BudgetState     `gorm:"type:varchar(20);not null" json:"state"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.State == "" {
		b.State = BudgetStateActive
	}
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if !IsValidBudgetMonth(b.Month) {
		return ErrInvalidBudgetMonth
	}
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}
	return nil
}

func (b *Budget) IsActive() bool {
	return b.State == BudgetStateActive
}

// Deactivate reports whether the state changed
func (b *Budget) Deactivate() bool {
	if b.State == BudgetStateDeactivated {
		return false
	}
	b.State = BudgetStateDeactivated
	return true
}

func (b *Budget) TableName() string {
	return "budgets"
}

// MonthOf formats t as a budget month key
func MonthOf(t time.Time) string {
	return t.Format(BudgetMonthLayout)
}

func IsValidBudgetMonth(month string) bool {
	_, err := time.Parse(BudgetMonthLayout, month)
	return err == nil
}
