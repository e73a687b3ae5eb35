package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidGoalTarget = errors.New("goal target amount must be positive")

type SavingsGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Category      string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return g.Validate()
}

func (g *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	return g.Validate()
}

func (g *SavingsGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if g.Name == "" {
		return errors.New("goal name is required")
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidGoalTarget
	}
	return nil
}

// Progress is current/target rounded to two places and expressed as a whole
// percentage. A zero target yields 0.
func (g *SavingsGoal) Progress() int {
	if g.TargetAmount.IsZero() {
		return 0
	}
	ratio := g.CurrentAmount.DivRound(g.TargetAmount, 2)
	return int(ratio.Mul(decimal.NewFromInt(100)).IntPart())
}

func (g *SavingsGoal) IsAchieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
