package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	sourceTransactions = "transactions"
	sourceBudgets      = "budgets"
	sourceGoals        = "goals"
)

type ReportConfig struct {
	DefaultBudget    decimal.Decimal
	MonthlyTarget    decimal.Decimal
	TopExpensesLimit int
	// SourceTimeout bounds each call to a data source; zero means no bound
	SourceTimeout time.Duration
	Breaker       CircuitBreakerConfig
}

type reportService struct {
	transactions TransactionSource
	budgets      BudgetSource
	goals        GoalSource
	periods      PeriodResolverInterface
	metrics      MetricsRecorderInterface
	events       EventLoggerInterface
	config       ReportConfig
	now          func() time.Time

	transactionBreaker CircuitBreakerInterface
	budgetBreaker      CircuitBreakerInterface
	goalBreaker        CircuitBreakerInterface
}

// NewReportService wires the three data sources behind their own circuit
// breakers. A failing or open source contributes its fallback value: no
// transactions, the default budget, no goals.
func NewReportService(
	transactions TransactionSource,
	budgets BudgetSource,
	goals GoalSource,
	periods PeriodResolverInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	config ReportConfig,
) ReportServiceInterface {
	if config.TopExpensesLimit <= 0 {
		config.TopExpensesLimit = 5
	}

	s := &reportService{
		transactions: transactions,
		budgets:      budgets,
		goals:        goals,
		periods:      periods,
		metrics:      metrics,
		events:       events,
		config:       config,
		now:          time.Now,
	}

	s.transactionBreaker = s.newBreaker(sourceTransactions)
	s.budgetBreaker = s.newBreaker(sourceBudgets)
	s.goalBreaker = s.newBreaker(sourceGoals)

	return s
}

func (s *reportService) newBreaker(name string) CircuitBreakerInterface {
	cfg := s.config.Breaker
	cfg.Name = name
	return NewCircuitBreaker(cfg, WithStateChange(s.onBreakerStateChange))
}

func (s *reportService) onBreakerStateChange(name string, from, to models.CircuitBreakerState) {
	s.events.LogCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
	s.metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": name})
}

// GetReport builds the full report. The current period, the previous period
// and the goals are fetched concurrently.
func (s *reportService) GetReport(ctx context.Context, userID uuid.UUID, rangeToken string, limit int) (*models.FinancialReport, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("report.full", time.Since(start)) }()

	rangeToken = s.periods.Normalize(rangeToken)
	period := s.periods.Resolve(rangeToken)

	var (
		current, previous []models.Transaction
		goals             []models.SavingsGoal
		degraded          [3]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, degraded[0], err = s.fetchTransactions(gctx, userID, period)
		return err
	})
	g.Go(func() (err error) {
		previous, degraded[1], err = s.fetchTransactions(gctx, userID, s.periods.PreviousPeriod(period))
		return err
	})
	g.Go(func() (err error) {
		goals, degraded[2], err = s.fetchGoals(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown, budgetsDegraded, err := s.categoryBreakdown(ctx, userID, period, current)
	if err != nil {
		return nil, err
	}

	summary := Summarize(current, previous)

	return &models.FinancialReport{
		Range:             rangeToken,
		Period:            period,
		Summary:           summary,
		MonthlyData:       MonthlyBreakdown(current, s.config.MonthlyTarget),
		CategoryBreakdown: breakdown,
		SavingsGoals:      GoalProgressList(goals),
		TopExpenses:       TopExpenses(current, s.limit(limit)),
		Insights:          GenerateInsights(summary, breakdown),
		Degraded:          degraded[0] || degraded[1] || degraded[2] || budgetsDegraded,
		GeneratedAt:       s.now().UTC(),
	}, nil
}

func (s *reportService) GetSummary(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.SummaryResponse, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("report.summary", time.Since(start)) }()

	rangeToken = s.periods.Normalize(rangeToken)
	period := s.periods.Resolve(rangeToken)

	current, previous, err := s.fetchBothPeriods(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{
		Range:   rangeToken,
		Period:  period,
		Summary: Summarize(current, previous),
	}, nil
}

func (s *reportService) GetCategoryBreakdown(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.CategoryBreakdownResponse, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("report.categories", time.Since(start)) }()

	rangeToken = s.periods.Normalize(rangeToken)
	period := s.periods.Resolve(rangeToken)

	current, _, err := s.fetchTransactions(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	breakdown, _, err := s.categoryBreakdown(ctx, userID, period, current)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryBreakdownResponse{Range: rangeToken, Categories: breakdown}, nil
}

func (s *reportService) GetTopExpenses(ctx context.Context, userID uuid.UUID, rangeToken string, limit int) (*dto.TopExpensesResponse, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("report.top_expenses", time.Since(start)) }()

	rangeToken = s.periods.Normalize(rangeToken)
	period := s.periods.Resolve(rangeToken)

	current, _, err := s.fetchTransactions(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	return &dto.TopExpensesResponse{Range: rangeToken, Expenses: TopExpenses(current, s.limit(limit))}, nil
}

func (s *reportService) GetInsights(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.InsightsResponse, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("report.insights", time.Since(start)) }()

	rangeToken = s.periods.Normalize(rangeToken)
	period := s.periods.Resolve(rangeToken)

	current, previous, err := s.fetchBothPeriods(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	breakdown, _, err := s.categoryBreakdown(ctx, userID, period, current)
	if err != nil {
		return nil, err
	}

	return &dto.InsightsResponse{
		Range:    rangeToken,
		Insights: GenerateInsights(Summarize(current, previous), breakdown),
	}, nil
}

func (s *reportService) GetMonthly(ctx context.Context, userID uuid.UUID, rangeToken string) (*dto.MonthlyResponse, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("report.monthly", time.Since(start)) }()

	rangeToken = s.periods.Normalize(rangeToken)
	period := s.periods.Resolve(rangeToken)

	current, _, err := s.fetchTransactions(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	return &dto.MonthlyResponse{Range: rangeToken, Months: MonthlyBreakdown(current, s.config.MonthlyTarget)}, nil
}

func (s *reportService) GetGoals(ctx context.Context, userID uuid.UUID) (*dto.ListGoalsResponse, error) {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("report.goals", time.Since(start)) }()

	goals, _, err := s.fetchGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ListGoalsResponse{Goals: GoalProgressList(goals)}, nil
}

func (s *reportService) fetchBothPeriods(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.Transaction, []models.Transaction, error) {
	var current, previous []models.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, _, err = s.fetchTransactions(gctx, userID, period)
		return err
	})
	g.Go(func() (err error) {
		previous, _, err = s.fetchTransactions(gctx, userID, s.periods.PreviousPeriod(period))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

func (s *reportService) fetchTransactions(ctx context.Context, userID uuid.UUID, period models.Period) ([]models.Transaction, bool, error) {
	return fetchFromSource(ctx, s, sourceTransactions, s.transactionBreaker, []models.Transaction{},
		func(callCtx context.Context) ([]models.Transaction, error) {
			return s.transactions.Transactions(callCtx, userID, period)
		})
}

func (s *reportService) fetchGoals(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, bool, error) {
	return fetchFromSource(ctx, s, sourceGoals, s.goalBreaker, []models.SavingsGoal{},
		func(callCtx context.Context) ([]models.SavingsGoal, error) {
			return s.goals.Goals(callCtx, userID)
		})
}

// categoryBreakdown looks budgets up for the month the period ends in
func (s *reportService) categoryBreakdown(ctx context.Context, userID uuid.UUID, period models.Period, transactions []models.Transaction) ([]models.CategoryAggregate, bool, error) {
	month := models.MonthOf(period.End)
	degraded := false
	var ctxErr error

	breakdown := CategoryBreakdown(transactions, func(category string) decimal.Decimal {
		if ctxErr != nil {
			return s.config.DefaultBudget
		}
		amount, sourceDegraded, err := s.fetchBudget(ctx, userID, category, month)
		if err != nil {
			ctxErr = err
		}
		degraded = degraded || sourceDegraded
		return amount
	})
	if ctxErr != nil {
		return nil, false, ctxErr
	}

	return breakdown, degraded, nil
}

func (s *reportService) fetchBudget(ctx context.Context, userID uuid.UUID, category, month string) (decimal.Decimal, bool, error) {
	type lookup struct {
		amount decimal.Decimal
		found  bool
	}

	result, degraded, err := fetchFromSource(ctx, s, sourceBudgets, s.budgetBreaker, lookup{},
		func(callCtx context.Context) (lookup, error) {
			amount, found, err := s.budgets.Budget(callCtx, userID, category, month)
			return lookup{amount: amount, found: found}, err
		})
	if err != nil {
		return decimal.Zero, false, err
	}
	if !result.found {
		return s.config.DefaultBudget, degraded, nil
	}
	return result.amount, false, nil
}

func (s *reportService) limit(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.config.TopExpensesLimit
}

func (s *reportService) sourceContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.SourceTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.SourceTimeout)
}

// fetchFromSource calls a data source through its breaker. Source failures
// and an open breaker yield fallback with degraded set; the only error
// returned is the caller's own context ending.
func fetchFromSource[T any](
	ctx context.Context,
	s *reportService,
	source string,
	cb CircuitBreakerInterface,
	fallback T,
	call func(context.Context) (T, error),
) (T, bool, error) {
	var out T
	err := guard(ctx, cb, func() error {
		callCtx, cancel := s.sourceContext(ctx)
		defer cancel()

		var err error
		out, err = call(callCtx)
		return err
	})
	if err == nil {
		return out, false, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fallback, false, ctxErr
	}

	slog.Warn("Report source unavailable, using fallback",
		"source", source,
		"error", err,
	)
	s.metrics.IncrementCounter("report.source.degraded", map[string]string{"source": source})
	return fallback, true, nil
}
