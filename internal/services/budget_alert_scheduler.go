package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

type BudgetSchedulerConfig struct {
	Interval        time.Duration
	WarningPercent  decimal.Decimal
	ExceededPercent decimal.Decimal
}

func DefaultBudgetSchedulerConfig() BudgetSchedulerConfig {
	return BudgetSchedulerConfig{
		Interval:        time.Hour,
		WarningPercent:  decimal.NewFromInt(80),
		ExceededPercent: decimal.NewFromInt(100),
	}
}

// BudgetAlertScheduler compares month-to-date spending with every active
// budget of the current month and raises at most one alert per user,
// category and alert type in a month
type BudgetAlertScheduler struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	alertRepo       repositories.AlertHistoryRepositoryInterface
	dispatcher      NotificationDispatcherInterface
	metrics         MetricsRecorderInterface
	events          EventLoggerInterface
	config          BudgetSchedulerConfig
	logger          *slog.Logger
	now             func() time.Time
}

type BudgetSchedulerOption func(*BudgetAlertScheduler)

func WithSchedulerClock(now func() time.Time) BudgetSchedulerOption {
	return func(s *BudgetAlertScheduler) {
		s.now = now
	}
}

func NewBudgetAlertScheduler(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	alertRepo repositories.AlertHistoryRepositoryInterface,
	dispatcher NotificationDispatcherInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	config BudgetSchedulerConfig,
	opts ...BudgetSchedulerOption,
) *BudgetAlertScheduler {
	defaults := DefaultBudgetSchedulerConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if !config.WarningPercent.IsPositive() {
		config.WarningPercent = defaults.WarningPercent
	}
	if !config.ExceededPercent.IsPositive() {
		config.ExceededPercent = defaults.ExceededPercent
	}

	s := &BudgetAlertScheduler{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		alertRepo:       alertRepo,
		dispatcher:      dispatcher,
		metrics:         metrics,
		events:          events,
		config:          config,
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs a check immediately and then on every interval until ctx ends
func (s *BudgetAlertScheduler) Start(ctx context.Context) {
	s.logger.Info("starting budget alert scheduler",
		slog.Duration("interval", s.config.Interval),
	)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.runAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("budget alert scheduler stopped")
			return
		case <-ticker.C:
			s.runAndLog(ctx)
		}
	}
}

func (s *BudgetAlertScheduler) runAndLog(ctx context.Context) {
	raised, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("budget check failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("budget check completed", slog.Int("alerts_raised", raised))
}

// RunOnce checks every active budget of the current month and returns the
// number of alerts raised. A failure on one budget is logged and skipped.
func (s *BudgetAlertScheduler) RunOnce(ctx context.Context) (int, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	budgets, err := s.budgetRepo.ListActiveForMonth(ctx, models.MonthOf(now))
	if err != nil {
		return 0, fmt.Errorf("failed to list budgets: %w", err)
	}

	raised := 0
	for i := range budgets {
		if err := ctx.Err(); err != nil {
			return raised, err
		}

		ok, err := s.check(ctx, &budgets[i], monthStart, monthEnd)
		if err != nil {
			s.logger.Error("failed to check budget",
				slog.String("budget_id", budgets[i].ID.String()),
				slog.String("user_id", budgets[i].UserID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if ok {
			raised++
		}
	}

	return raised, nil
}

func (s *BudgetAlertScheduler) check(ctx context.Context, budget *models.Budget, monthStart, monthEnd time.Time) (bool, error) {
	spent, err := s.transactionRepo.SumExpensesByCategory(ctx, budget.UserID, budget.Category, monthStart, monthEnd)
	if err != nil {
		return false, fmt.Errorf("failed to sum expenses: %w", err)
	}

	alert := s.evaluate(budget, spent)
	if alert == nil {
		return false, nil
	}

	exists, err := s.alertRepo.ExistsSince(ctx, budget.UserID, budget.Category, alert.AlertType, monthStart)
	if err != nil {
		return false, fmt.Errorf("failed to check existing alerts: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return false, fmt.Errorf("failed to create budget alert: %w", err)
	}

	s.events.LogBudgetAlertRaised(ctx, budget, alert.AlertType, spent)
	s.metrics.IncrementCounter("budget.alert", map[string]string{
		"alert_type": string(alert.AlertType),
	})

	if !s.dispatcher.Dispatch(*alert) {
		s.logger.Warn("notification queue full, budget alert not dispatched",
			slog.String("alert_id", alert.ID.String()),
		)
	}

	return true, nil
}

// evaluate returns the alert the spend level calls for, nil below the
// warning level
func (s *BudgetAlertScheduler) evaluate(budget *models.Budget, spent decimal.Decimal) *models.AlertHistory {
	if !budget.Amount.IsPositive() {
		return nil
	}

	percent := spent.Mul(hundred).Div(budget.Amount)

	var alert *models.AlertHistory
	switch {
	case percent.GreaterThanOrEqual(s.config.ExceededPercent):
		alert = &models.AlertHistory{
			AlertType: models.AlertTypeBudgetExceeded,
			Severity:  models.SeverityCritical,
			Message: fmt.Sprintf("Budget Exceeded: %s. You've exceeded your %s budget by $%s (spent $%s of $%s)",
				budget.Category, budget.Category,
				spent.Sub(budget.Amount).StringFixed(2), spent.StringFixed(2), budget.Amount.StringFixed(2)),
		}
	case percent.GreaterThanOrEqual(s.config.WarningPercent):
		alert = &models.AlertHistory{
			AlertType: models.AlertTypeBudgetWarning,
			Severity:  models.SeverityWarning,
			Message: fmt.Sprintf("Budget Warning: %s. You've used %s%% of your %s budget ($%s of $%s)",
				budget.Category, percent.StringFixed(0), budget.Category,
				spent.StringFixed(2), budget.Amount.StringFixed(2)),
		}
	default:
		return nil
	}

	alert.UserID = budget.UserID
	alert.Category = budget.Category
	alert.SetMetadata("budgetId", budget.ID.String())
	alert.SetMetadata("month", budget.Month)
	alert.SetMetadata("spent", spent.StringFixed(2))
	alert.SetMetadata("budget", budget.Amount.StringFixed(2))
	alert.SetMetadata("percentage", percent.StringFixed(2))

	return alert
}
