package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"

	RecurringDateLayout = "2006-01-02"
)

var (
	ErrInvalidFrequency = errors.New("frequency must be DAILY, WEEKLY, MONTHLY or YEARLY")
	ErrInvalidSchedule  = errors.New("end date must not be before the start date")
	ErrMissingStartDate = errors.New("start date is required")
)

func IsValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTransaction is a template the recurring processor posts as a
// regular transaction on every occurrence between StartDate and EndDate.
// Monthly and yearly schedules stay anchored on the day of StartDate, so a
// schedule starting on the 31st posts on the last day of shorter months and
// returns to the 31st afterwards.
type RecurringTransaction struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type           string          `gorm:"type:varchar(10);not null" json:"type"`
	Category       string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	Description    string          `gorm:"type:varchar(255);not null" json:"description"`
	MerchantName   string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	Frequency      Frequency       `gorm:"type:varchar(10);not null" json:"frequency"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	NextOccurrence time.Time       `gorm:"not null;index:idx_recurring_due,priority:2" json:"next_occurrence"`
	Active         bool            `gorm:"not null;index:idx_recurring_due,priority:1" json:"active"`
	LastPostedAt   *time.Time      `json:"last_posted_at,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

func (r *RecurringTransaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Normalize()
	return r.Validate()
}

func (r *RecurringTransaction) BeforeUpdate(tx *gorm.DB) error {
	return r.Validate()
}

// Normalize applies the same type and amount rules as Transaction and starts
// the schedule at StartDate when no occurrence was set.
func (r *RecurringTransaction) Normalize() {
	r.Type = strings.ToUpper(strings.TrimSpace(r.Type))
	if r.Type == "" {
		r.Type = InferType(r.Amount)
	}
	r.Type = CanonicalType(r.Type)
	r.Amount = r.Amount.Abs()
	r.Category = strings.TrimSpace(r.Category)
	r.Frequency = Frequency(strings.ToUpper(strings.TrimSpace(string(r.Frequency))))

	if r.NextOccurrence.IsZero() {
		r.NextOccurrence = r.StartDate
	}
}

func (r *RecurringTransaction) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if !IsValidTransactionType(r.Type) {
		return ErrInvalidTransactionType
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !IsValidFrequency(r.Frequency) {
		return ErrInvalidFrequency
	}
	if r.StartDate.IsZero() {
		return ErrMissingStartDate
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return ErrInvalidSchedule
	}
	return nil
}

// IsDue reports whether NextOccurrence has arrived and still falls inside
// the schedule
func (r *RecurringTransaction) IsDue(now time.Time) bool {
	if !r.Active || r.NextOccurrence.After(now) {
		return false
	}
	return r.EndDate == nil || !r.NextOccurrence.After(*r.EndDate)
}

// Advance moves NextOccurrence one period forward and deactivates the
// schedule once it passes EndDate. It reports whether the schedule is still
// active.
func (r *RecurringTransaction) Advance() bool {
	r.NextOccurrence = r.Frequency.Next(r.NextOccurrence, r.StartDate.Day())
	if r.EndDate != nil && r.NextOccurrence.After(*r.EndDate) {
		r.Active = false
	}
	return r.Active
}

// Occurrence builds the transaction posted for the current NextOccurrence.
// The external id is stable per schedule and date so a repeated run cannot
// post the same occurrence twice.
func (r *RecurringTransaction) Occurrence() *Transaction {
	return &Transaction{
		UserID:          r.UserID,
		Amount:          r.Amount,
		Type:            r.Type,
		Category:        r.Category,
		Description:     r.Description,
		MerchantName:    r.MerchantName,
		TransactionDate: r.NextOccurrence,
		Source:          TransactionSourceRecurring,
		ExternalID:      r.OccurrenceKey(),
	}
}

func (r *RecurringTransaction) OccurrenceKey() string {
	return fmt.Sprintf("recurring:%s:%s", r.ID, r.NextOccurrence.Format(RecurringDateLayout))
}

func (r *RecurringTransaction) TableName() string {
	return "recurring_transactions"
}

// Next returns the occurrence after from. anchorDay is the day of month
// monthly and yearly schedules aim for, clamped to the month's last day.
func (f Frequency) Next(from time.Time, anchorDay int) time.Time {
	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyYearly:
		return addMonthsClamped(from, 12, anchorDay)
	default:
		return addMonthsClamped(from, 1, anchorDay)
	}
}

func addMonthsClamped(t time.Time, months, day int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}
