package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

type AlertType string

const (
	AlertTypeHighAmount      AlertType = "HIGH_AMOUNT"
	AlertTypeBudgetWarning   AlertType = "BUDGET_WARNING"
	AlertTypeBudgetExceeded  AlertType = "BUDGET_EXCEEDED"
	AlertTypeDailyLimit      AlertType = "DAILY_LIMIT_EXCEEDED"
	AlertTypeUnusualCategory AlertType = "UNUSUAL_CATEGORY"
)

// AlertHistory is an emitted alert. Rows are append-only apart from the read flag.
type AlertHistory struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_alert_history_user_created,priority:1" json:"user_id"`
	RuleID    *uuid.UUID `gorm:"type:uuid" json:"rule_id,omitempty"`
	AlertType AlertType  `gorm:"type:varchar(40);not null" json:"alert_type"`
	Severity  Severity   `gorm:"type:varchar(10);not null" json:"severity"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Category  string     `gorm:"type:varchar(100)" json:"category,omitempty"`
	Metadata  JSONBMap   `gorm:"type:text" json:"metadata"`
	IsRead    bool       `gorm:"not null;default:false" json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null;index:idx_alert_history_user_created,priority:2" json:"created_at"`
}

func (a *AlertHistory) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.Severity == "" {
		a.Severity = SeverityInfo
	}
	return nil
}

func (a *AlertHistory) SetMetadata(key string, value interface{}) {
	if a.Metadata == nil {
		a.Metadata = make(JSONBMap)
	}
	a.Metadata[key] = value
}

// MarkRead reports whether the flag changed
func (a *AlertHistory) MarkRead(at time.Time) bool {
	if a.IsRead {
		return false
	}
	a.IsRead = true
	a.ReadAt = &at
	return true
}

func (a *AlertHistory) String() string {
	return fmt.Sprintf("Alert[User: %s, Type: %s, Severity: %s, Time: %s]",
		a.UserID, a.AlertType, a.Severity, a.CreatedAt.Format(time.RFC3339))
}

func (a *AlertHistory) TableName() string {
	return "alert_history"
}
