package main

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/ratelimit"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/redis/go-redis/v9"
)

// app holds the dependency graph shared by the subcommands
type app struct {
	cfg     *config.Config
	db      *database.DB
	redis   *redis.Client
	store   ratelimit.Store
	metrics services.MetricsRecorderInterface
	events  services.EventLoggerInterface

	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	goalRepo        repositories.SavingsGoalRepositoryInterface
	ruleRepo        repositories.AlertRuleRepositoryInterface
	alertRepo       repositories.AlertHistoryRepositoryInterface
	notificationLog repositories.NotificationLogRepositoryInterface
	contactRepo     repositories.NotificationContactRepositoryInterface
	recurringRepo   repositories.RecurringTransactionRepositoryInterface

	dispatcher *services.NotificationDispatcher
	evaluator  services.AlertEvaluatorInterface
}

func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return newApp(ctx, cfg)
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		db:      db,
		metrics: services.NewPrometheusMetrics(),
		events:  services.NewEventLogger(slog.Default()),

		transactionRepo: repositories.NewTransactionRepository(db.DB),
		budgetRepo:      repositories.NewBudgetRepository(db.DB),
		goalRepo:        repositories.NewSavingsGoalRepository(db.DB),
		ruleRepo:        repositories.NewAlertRuleRepository(db.DB),
		alertRepo:       repositories.NewAlertHistoryRepository(db.DB),
		notificationLog: repositories.NewNotificationLogRepository(db.DB),
		contactRepo:     repositories.NewNotificationContactRepository(db.DB),
		recurringRepo:   repositories.NewRecurringTransactionRepository(db.DB),
	}

	if cfg.Redis.Enabled {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisStore := ratelimit.NewRedisStore(a.redis)
		if err := redisStore.Ping(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.store = redisStore
	} else {
		a.store = ratelimit.NewGormStore(repositories.NewRateLimitCounterRepository(db.DB))
	}

	a.dispatcher = services.NewNotificationDispatcher(
		services.NotifiersFor(cfg.Notifications.Channels, cfg.Notifications.SMTP),
		a.notificationLog,
		a.contactRepo,
		a.metrics,
		a.events,
		services.DispatcherConfig{
			Workers:     cfg.Notifications.Workers,
			QueueSize:   cfg.Notifications.QueueSize,
			MaxAttempts: cfg.Notifications.MaxAttempts,
		},
	)

	limiter := ratelimit.NewFixedWindowLimiter(a.store,
		cfg.Alerts.RateLimitMaxPerWindow,
		cfg.Alerts.RateLimitWindow,
		ratelimit.WithFailOpen(cfg.Alerts.FailOpen),
	)

	a.evaluator = services.NewAlertEvaluator(
		a.ruleRepo,
		a.alertRepo,
		limiter,
		a.dispatcher,
		a.metrics,
		a.events,
		services.AlertEvaluatorConfig{DefaultHighAmount: cfg.Alerts.DefaultHighAmount},
	)

	return a, nil
}

// migrate brings the schema up to date. SQLite runs the gorm auto-migration;
// Postgres applies the SQL migrations when AUTO_MIGRATE is set.
func (a *app) migrate(ctx context.Context) error {
	if a.cfg.Database.IsSQLite() {
		if err := a.db.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		return a.db.CreateIndexes()
	}

	sqlDB, err := a.db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return database.RunMigrationsIfEnabled(ctx, sqlDB, database.MigrationOptionsFromEnv())
}

func (a *app) transactionService(publisher services.TransactionEventPublisher) services.TransactionServiceInterface {
	return services.NewTransactionService(a.transactionRepo, services.NewCategorizer(), publisher, a.metrics)
}

func (a *app) reportService() services.ReportServiceInterface {
	reports := a.cfg.Reports
	return services.NewReportService(
		services.NewRepositoryTransactionSource(a.transactionRepo),
		services.NewRepositoryBudgetSource(a.budgetRepo),
		services.NewRepositoryGoalSource(a.goalRepo),
		services.NewPeriodResolver(),
		a.metrics,
		a.events,
		services.ReportConfig{
			DefaultBudget:    reports.DefaultBudget,
			MonthlyTarget:    reports.MonthlyTarget,
			TopExpensesLimit: reports.TopExpensesLimit,
			SourceTimeout:    reports.SourceTimeout,
			Breaker: services.CircuitBreakerConfig{
				MaxFailures:  reports.BreakerMaxFailures,
				ResetTimeout: reports.BreakerReset,
			},
		},
	)
}

func (a *app) budgetScheduler() *services.BudgetAlertScheduler {
	return services.NewBudgetAlertScheduler(
		a.budgetRepo,
		a.transactionRepo,
		a.alertRepo,
		a.dispatcher,
		a.metrics,
		a.events,
		services.BudgetSchedulerConfig{
			Interval:        a.cfg.Alerts.BudgetCheckInterval,
			WarningPercent:  a.cfg.Alerts.BudgetWarningPercent,
			ExceededPercent: a.cfg.Alerts.BudgetExceededPercent,
		},
	)
}

func (a *app) recurringProcessor(transactions services.TransactionServiceInterface) *services.RecurringProcessor {
	return services.NewRecurringProcessor(
		a.recurringRepo,
		a.transactionRepo,
		transactions,
		a.metrics,
		services.RecurringProcessorConfig{
			Interval:     a.cfg.Recurring.Interval,
			BatchSize:    a.cfg.Recurring.BatchSize,
			CatchUpLimit: a.cfg.Recurring.CatchUpLimit,
		},
	)
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	if err := a.db.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}
