package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// CreateRecurringRequest schedules a transaction. A negative amount with no
// type is an EXPENSE. The first occurrence is StartDate.
type CreateRecurringRequest struct {
	Amount       string `json:"amount" validate:"required"`
	Type         string `json:"type" validate:"omitempty,txn_type"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"required,min=1,max=255"`
	MerchantName string `json:"merchantName" validate:"omitempty,max=255"`
	Frequency    string `json:"frequency" validate:"required,frequency"`
	StartDate    string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateRecurringRequest changes only the fields that are set. Resuming a
// paused schedule skips the occurrences missed while it was paused.
type UpdateRecurringRequest struct {
	Amount       string `json:"amount"`
	Type         string `json:"type" validate:"omitempty,txn_type"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"omitempty,min=1,max=255"`
	MerchantName string `json:"merchantName" validate:"omitempty,max=255"`
	Frequency    string `json:"frequency" validate:"omitempty,frequency"`
	EndDate      string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Active       *bool  `json:"active"`
}

type RecurringResponse struct {
	ID             uuid.UUID  `json:"id"`
	Amount         string     `json:"amount"`
	Type           string     `json:"type"`
	Category       string     `json:"category,omitempty"`
	Description    string     `json:"description"`
	MerchantName   string     `json:"merchantName,omitempty"`
	Frequency      string     `json:"frequency"`
	StartDate      string     `json:"startDate"`
	EndDate        string     `json:"endDate,omitempty"`
	NextOccurrence string     `json:"nextOccurrence"`
	Active         bool       `json:"active"`
	LastPostedAt   *time.Time `json:"lastPostedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func NewRecurringResponse(r *models.RecurringTransaction) RecurringResponse {
	resp := RecurringResponse{
		ID:             r.ID,
		Amount:         r.Amount.StringFixed(2),
		Type:           r.Type,
		Category:       r.Category,
		Description:    r.Description,
		MerchantName:   r.MerchantName,
		Frequency:      string(r.Frequency),
		StartDate:      r.StartDate.Format(models.RecurringDateLayout),
		NextOccurrence: r.NextOccurrence.Format(models.RecurringDateLayout),
		Active:         r.Active,
		LastPostedAt:   r.LastPostedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.EndDate != nil {
		resp.EndDate = r.EndDate.Format(models.RecurringDateLayout)
	}
	return resp
}

type ListRecurringResponse struct {
	Recurring  []RecurringResponse `json:"recurring"`
	Pagination PaginationInfo      `json:"pagination"`
}
