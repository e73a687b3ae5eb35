package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// Transaction Request DTOs

// CreateTransactionRequest records a single transaction. A negative amount with
// no type is stored as an EXPENSE.
type CreateTransactionRequest struct {
	Amount          string `json:"amount" validate:"required"`
	Type            string `json:"type" validate:"omitempty,txn_type"`
	Category        string `json:"category" validate:"omitempty,max=100"`
	Description     string `json:"description" validate:"required,min=1,max=255"`
	MerchantName    string `json:"merchantName" validate:"omitempty,max=255"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
	TransactionDate string `json:"transactionDate" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Type      string `query:"type" validate:"omitempty,txn_type"`
	Category  string `query:"category"`
}

// PaginationParams contains page-based pagination parameters
type PaginationParams struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize applies defaults: page 1, size 20, size capped at 100
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 20
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// Transaction Response DTOs

type TransactionResponse struct {
	ID              uuid.UUID `json:"id"`
	Amount          string    `json:"amount"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	MerchantName    string    `json:"merchantName,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	TransactionDate string    `json:"transactionDate"`
	Source          string    `json:"source"`
	ExternalID      string    `json:"externalId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Amount:          t.Amount.StringFixed(2),
		Type:            t.Type,
		Category:        t.Category,
		Description:     t.Description,
		MerchantName:    t.MerchantName,
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		Source:          t.Source,
		ExternalID:      t.ExternalID,
		CreatedAt:       t.CreatedAt,
	}
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

func NewPaginationInfo(p PaginationParams, total int64) PaginationInfo {
	pages := 0
	if p.Size > 0 {
		pages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return PaginationInfo{
		Page:       p.Page,
		Size:       p.Size,
		Total:      total,
		TotalPages: pages,
		HasMore:    p.Page < pages,
	}
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// ImportResponse wraps an import summary with the detected format
type ImportResponse struct {
	Format string `json:"format"`
	*models.ImportResult
}
