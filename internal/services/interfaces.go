package services

import (
	"context"
	"io"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodResolverInterface turns report range tokens into concrete periods
type PeriodResolverInterface interface {
	Resolve(rangeToken string) models.Period
	PreviousPeriod(period models.Period) models.Period
	Normalize(rangeToken string) string
}

// TransactionSource yields a user's transactions inside a period
type TransactionSource interface {
	Transactions(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.Transaction, error)
}

// BudgetSource looks up the budget for a category. found is false when the
// user never set one.
type BudgetSource interface {
	Budget(ctx context.Context, userID uuid.UUID, category, month string) (amount decimal.Decimal, found bool, err error)
}

type GoalSource interface {
	Goals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error)
}

// ReportServiceInterface builds financial reports. Data-source failures
// degrade the report instead of failing it.
type ReportServiceInterface interface {
	GetReport(ctx context.Context, userID uuid.UUID, rangeToken string, limit int) (*models.FinancialReport, error)
	GetSummary(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.SummaryResponse, error)
	GetCategoryBreakdown(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.CategoryBreakdownResponse, error)
	GetTopExpenses(ctx context.Context, userID uuid.UUID, rangeToken string, limit int) (*dto.TopExpensesResponse, error)
	GetInsights(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.InsightsResponse, error)
	GetMonthly(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.MonthlyResponse, error)
	GetGoals(ctx context.Context, userID uuid.UUID) (*dto.ListGoalsResponse, error)
}

// AlertRateLimiter gates alert evaluation per user
type AlertRateLimiter interface {
	IsLimited(ctx context.Context, userID string) (bool, error)
	Reserve(ctx context.Context, userID string) (bool, error)
	Release(ctx context.Context, userID string) error
}

// AlertEvaluatorInterface checks one transaction event against the user's rules
type AlertEvaluatorInterface interface {
	Evaluate(ctx context.Context, event models.TransactionEvent) ([]models.AlertHistory, error)
}

type TransactionEventPublisher interface {
	PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error
}

// Notifier delivers an alert over a single channel
type Notifier interface {
	Channel() models.NotificationChannel
	Send(ctx context.Context, alert models.AlertHistory, recipient string) models.DeliveryResult
}

type NotificationDispatcherInterface interface {
	Dispatch(alert models.AlertHistory) bool
	Deliver(ctx context.Context, alert models.AlertHistory) []models.DeliveryResult
}

type BudgetAlertSchedulerInterface interface {
	RunOnce(ctx context.Context) (int, error)
}

type AlertServiceInterface interface {
	ListAlerts(ctx context.Context, userID uuid.UUID, page dto.PaginationParams) (*dto.ListAlertsResponse, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]models.AlertHistory, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, alertID uuid.UUID) (*models.AlertHistory, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type RuleServiceInterface interface {
	CreateRule(ctx context.Context, userID uuid.UUID, req *dto.CreateRuleRequest) (*models.AlertRule, error)
	ListRules(ctx context.Context, userID uuid.UUID, includeDeactivated bool) ([]models.AlertRule, error)
	UpdateRule(ctx context.Context, userID, ruleID uuid.UUID, req *dto.UpdateRuleRequest) (*models.AlertRule, error)
	DeactivateRule(ctx context.Context, userID, ruleID uuid.UUID) (*models.AlertRule, error)
	ActivateRule(ctx context.Context, userID, ruleID uuid.UUID) (*models.AlertRule, error)
}

type BudgetServiceInterface interface {
	UpsertBudget(ctx context.Context, userID uuid.UUID, req *dto.UpsertBudgetRequest) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID, month string) (*dto.ListBudgetsResponse, error)
	DeactivateBudget(ctx context.Context, userID, budgetID uuid.UUID) error
}

type GoalServiceInterface interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*models.SavingsGoal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.SavingsGoal, error)
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*models.SavingsGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}

type RecurringServiceInterface interface {
	CreateRecurring(ctx context.Context, userID uuid.UUID, req *dto.CreateRecurringRequest) (*models.RecurringTransaction, error)
	ListRecurring(ctx context.Context, userID uuid.UUID, page dto.PaginationParams) (*dto.ListRecurringResponse, error)
	GetRecurring(ctx context.Context, userID, recurringID uuid.UUID) (*models.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, userID, recurringID uuid.UUID, req *dto.UpdateRecurringRequest) (*models.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, userID, recurringID uuid.UUID) error
}

type ContactServiceInterface interface {
	UpdateContact(ctx context.Context, userID uuid.UUID, email string) (*models.NotificationContact, error)
	GetContact(ctx context.Context, userID uuid.UUID) (*models.NotificationContact, error)
}

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	Record(ctx context.Context, transaction *models.Transaction) error
	ListTransactions(ctx context.Context, userID uuid.UUID, filters dto.TransactionFilters, page dto.PaginationParams) (*dto.ListTransactionsResponse, error)
}

type ImportServiceInterface interface {
	Import(ctx context.Context, userID uuid.UUID, r io.Reader, format string) (*models.ImportResult, error)
}

// CategorizerInterface infers a category for transactions that arrive without one
type CategorizerInterface interface {
	CategorizeByMerchant(merchantName string) (category string, confidence float64)
	CategorizeByDescription(description string) (category string, confidence float64)
	FuzzyMatchMerchant(input string) (merchant string, score float64)
	CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult
}

// DemoGeneratorInterface generates realistic transaction history for demos and tests
type DemoGeneratorInterface interface {
	GenerateHistory(userID uuid.UUID, end time.Time, months int) []models.Transaction
	GenerateSalary(userID uuid.UUID, start, end time.Time) []models.Transaction
	GenerateBills(userID uuid.UUID, start, end time.Time) []models.Transaction
	GenerateDailyPurchases(userID uuid.UUID, start, end time.Time) []models.Transaction
	GenerateAmount(category string) decimal.Decimal
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.AccessClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// EventLoggerInterface writes structured lifecycle records for alerts and notifications
type EventLoggerInterface interface {
	LogAlertCreated(ctx context.Context, alert *models.AlertHistory)
	LogAlertSuppressed(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID, reason string)
	LogNotificationSent(ctx context.Context, alertID uuid.UUID, channel models.NotificationChannel, attempts int)
	LogNotificationFailed(ctx context.Context, alertID uuid.UUID, channel models.NotificationChannel, errorMsg string, attempts int)
	LogRuleStateChange(ctx context.Context, ruleID uuid.UUID, oldState, newState models.RuleState)
	LogBudgetAlertRaised(ctx context.Context, budget *models.Budget, alertType models.AlertType, spent decimal.Decimal)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogImportCompleted(ctx context.Context, userID uuid.UUID, format string, result *models.ImportResult, durationMs int64)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
