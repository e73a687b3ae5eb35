package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEvent is published on the broker for every stored transaction
type TransactionEvent struct {
	EventID         uuid.UUID       `json:"event_id"`
	TransactionID   uuid.UUID       `json:"transaction_id"`
	UserID          uuid.UUID       `json:"user_id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	MerchantName    string          `json:"merchant_name,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

func NewTransactionEvent(t *Transaction) TransactionEvent {
	return TransactionEvent{
		EventID:         uuid.New(),
		TransactionID:   t.ID,
		UserID:          t.UserID,
		Amount:          t.Amount,
		Type:            t.Type,
		Category:        t.Category,
		Description:     t.Description,
		MerchantName:    t.MerchantName,
		TransactionDate: t.TransactionDate,
		OccurredAt:      time.Now().UTC(),
	}
}

// IsDebit is true for EXPENSE events and for producers still sending DEBIT
func (e TransactionEvent) IsDebit() bool {
	return CanonicalType(e.Type) == TransactionTypeExpense
}

func (e TransactionEvent) AbsAmount() decimal.Decimal {
	return e.Amount.Abs()
}
