package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelInApp NotificationChannel = "IN_APP"
	ChannelLog   NotificationChannel = "LOG"
)

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "PENDING"
	DeliverySent    DeliveryStatus = "SENT"
	DeliveryFailed  DeliveryStatus = "FAILED"
)

// DeliveryResult is what a notifier reports for one send attempt
type DeliveryResult struct {
	Channel   NotificationChannel `json:"channel"`
	Recipient string              `json:"recipient,omitempty"`
	Status    DeliveryStatus      `json:"status"`
	Error     string              `json:"error,omitempty"`
}

func (r DeliveryResult) Delivered() bool {
	return r.Status == DeliverySent
}

// NotificationLog records delivery of one alert over one channel
type NotificationLog struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	AlertID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"alert_id"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Channel      NotificationChannel `gorm:"type:varchar(20);not null" json:"channel"`
	Recipient    string              `gorm:"type:varchar(255)" json:"recipient,omitempty"`
	Status       DeliveryStatus      `gorm:"type:varchar(10);not null" json:"status"`
	ErrorMessage string              `gorm:"type:text" json:"error_message,omitempty"`
	Attempts     int                 `gorm:"not null;default:0" json:"attempts"`
	SentAt       *time.Time          `json:"sent_at,omitempty"`
	CreatedAt    time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"not null" json:"updated_at"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Status == "" {
		n.Status = DeliveryPending
	}
	return nil
}

// Apply copies the outcome of a send attempt onto the log entry
func (n *NotificationLog) Apply(result DeliveryResult, at time.Time) {
	n.Attempts++
	n.Status = result.Status
	if result.Recipient != "" {
		n.Recipient = result.Recipient
	}
	n.ErrorMessage = result.Error
	if result.Delivered() {
		n.SentAt = &at
	}
}

func (n *NotificationLog) TableName() string {
	return "notification_logs"
}

// NotificationContact holds the address alerts are mailed to
type NotificationContact struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *NotificationContact) TableName() string {
	return "notification_contacts"
}
