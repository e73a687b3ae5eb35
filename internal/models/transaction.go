package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"

	// Legacy bank-feed spellings accepted on inbound events
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"

	TransactionSourceManual = "manual"
	TransactionSourceCSV    = "csv"
	TransactionSourceOFX    = "ofx"
	TransactionSourceDemo   = "demo"

	TransactionSourceRecurring = "recurring"

	DefaultCategory = "Other"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingUserID          = errors.New("user ID is required")
	ErrMissingTransactionDate = errors.New("transaction date is required")
)

// Transaction is a single income or expense record owned by a user.
// Amount is always stored as an absolute value; Type carries the direction.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type            string          `gorm:"type:varchar(10);not null" json:"type"`
	Category        string          `gorm:"type:varchar(100);not null" json:"category"`
	Description     string          `gorm:"type:text" json:"description"`
	MerchantName    string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	Source          string          `gorm:"type:varchar(10);not null" json:"source"`
	ExternalID      string          `gorm:"type:varchar(255);index" json:"external_id,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	t.Normalize()

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Normalize infers a missing type from the amount sign, stores the amount as
// an absolute value and fills the category and source defaults.
func (t *Transaction) Normalize() {
	t.Type = strings.ToUpper(strings.TrimSpace(t.Type))
	if t.Type == "" {
		t.Type = InferType(t.Amount)
	}
	t.Type = CanonicalType(t.Type)
	t.Amount = t.Amount.Abs()

	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Source == "" {
		t.Source = TransactionSourceManual
	}
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.TransactionDate.IsZero() {
		return ErrMissingTransactionDate
	}

	if len(t.Category) > 100 {
		return errors.New("category too long")
	}

	return nil
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// Vendor is the grouping key for top-expense rankings: the merchant name when
// present, the description otherwise. No normalization is applied.
func (t *Transaction) Vendor() string {
	if t.MerchantName != "" {
		return t.MerchantName
	}
	return t.Description
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// InferType returns EXPENSE for negative amounts and INCOME otherwise
func InferType(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}

// CanonicalType maps the CREDIT/DEBIT spellings onto INCOME/EXPENSE
func CanonicalType(txType string) string {
	switch strings.ToUpper(txType) {
	case TransactionTypeDebit:
		return TransactionTypeExpense
	case TransactionTypeCredit:
		return TransactionTypeIncome
	default:
		return strings.ToUpper(txType)
	}
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(txType string) bool {
	return txType == TransactionTypeIncome || txType == TransactionTypeExpense
}
