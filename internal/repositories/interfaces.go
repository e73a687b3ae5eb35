package repositories

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters narrows a transaction listing. From is inclusive, To is exclusive.
type TransactionFilters struct {
	From     *time.Time
	To       *time.Time
	Type     string
	Category string
	Offset   int
	Limit    int
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	// GetByUserBetween returns transactions dated in [from, to), oldest first
	GetByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.Transaction, error)
	GetWithFilters(ctx context.Context, userID uuid.UUID, filters TransactionFilters) ([]models.Transaction, int64, error)
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, category string, from, to time.Time) (decimal.Decimal, error)
	ExistsByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (bool, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	// Upsert updates the active budget for (user, category, month) or creates one
	Upsert(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	ListByUser(ctx context.Context, userID uuid.UUID, month string) ([]models.Budget, error)
	FindActive(ctx context.Context, userID uuid.UUID, category, month string) (*models.Budget, error)
	FindLatestActive(ctx context.Context, userID uuid.UUID, category string) (*models.Budget, error)
	ListActiveForMonth(ctx context.Context, month string) ([]models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) error
}

// SavingsGoalRepositoryInterface defines the contract for savings goal repository operations
type SavingsGoalRepositoryInterface interface {
	Create(ctx context.Context, goal *models.SavingsGoal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavingsGoal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error)
	Update(ctx context.Context, goal *models.SavingsGoal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecurringTransactionRepositoryInterface defines the contract for recurring schedule operations
type RecurringTransactionRepositoryInterface interface {
	Create(ctx context.Context, recurring *models.RecurringTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringTransaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.RecurringTransaction, int64, error)
	// ListDue returns active schedules whose next occurrence is at or before now, oldest first
	ListDue(ctx context.Context, now time.Time, limit int) ([]models.RecurringTransaction, error)
	Update(ctx context.Context, recurring *models.RecurringTransaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertRuleRepositoryInterface defines the contract for alert rule repository operations
type AlertRuleRepositoryInterface interface {
	Create(ctx context.Context, rule *models.AlertRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AlertRule, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeDeactivated bool) ([]models.AlertRule, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.AlertRule, error)
	Update(ctx context.Context, rule *models.AlertRule) error
}

// AlertHistoryRepositoryInterface defines the contract for alert history repository operations
type AlertHistoryRepositoryInterface interface {
	Create(ctx context.Context, alert *models.AlertHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AlertHistory, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.AlertHistory, int64, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]models.AlertHistory, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	ExistsSince(ctx context.Context, userID uuid.UUID, category string, alertType models.AlertType, since time.Time) (bool, error)
}

// NotificationLogRepositoryInterface defines the contract for delivery log operations
type NotificationLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.NotificationLog) error
	Update(ctx context.Context, entry *models.NotificationLog) error
	ListByAlert(ctx context.Context, alertID uuid.UUID) ([]models.NotificationLog, error)
}

// NotificationContactRepositoryInterface defines the contract for contact operations
type NotificationContactRepositoryInterface interface {
	Upsert(ctx context.Context, contact *models.NotificationContact) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.NotificationContact, error)
}

// RateLimitCounterRepositoryInterface persists TTL counters when no Redis is available.
// Rows past their expiry are treated as absent by every method.
type RateLimitCounterRepositoryInterface interface {
	Increment(ctx context.Context, key string, ttl time.Duration, now time.Time) (int64, error)
	Get(ctx context.Context, key string, now time.Time) (int64, error)
	Delete(ctx context.Context, key string) error
	InsertIfAbsent(ctx context.Context, key string, ttl time.Duration, now time.Time) (bool, error)
	// Decrement lowers a live counter by one, never below zero
	Decrement(ctx context.Context, key string, now time.Time) (int64, error)
}
