package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/handlers"
	"fintrack/internal/messaging"
	"fintrack/internal/models"
	"fintrack/internal/ratelimit"
	"fintrack/internal/server"
	"fintrack/internal/services"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const counterCleanupInterval = 10 * time.Minute

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API with the notification dispatcher.

Transaction events go to the configured AMQP exchange when AMQP_ENABLED is
set; otherwise alerts are evaluated in-process as transactions are stored.`,
		RunE: runServe,
	}

	cmd.Flags().Bool("with-scheduler", false, "also run the budget alert scheduler and recurring processor in this process")
	_ = viper.BindPFlag("serve.with_scheduler", cmd.Flags().Lookup("with-scheduler"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.migrate(ctx); err != nil {
		return err
	}

	a.dispatcher.Start(ctx)
	defer a.dispatcher.Stop()

	publisher, closePublisher, err := a.eventPublisher()
	if err != nil {
		return err
	}
	defer closePublisher()

	transactionService := a.transactionService(publisher)
	importService := services.NewImportService(transactionService, a.transactionRepo, a.metrics, a.events)

	deps := map[string]handlers.Pinger{}
	if pinger, ok := a.store.(handlers.Pinger); ok && a.redis != nil {
		deps["redis"] = pinger
	} else {
		go cleanupCounters(ctx, a)
	}

	if viper.GetBool("serve.with_scheduler") {
		go a.budgetScheduler().Start(ctx)
		go a.recurringProcessor(transactionService).Start(ctx)
	}

	srv := server.New(a.cfg, services.NewTokenService(&a.cfg.JWT),
		ratelimit.NewDeduplicator(a.store, a.cfg.Server.DedupTTL),
		a.metrics,
		server.Handlers{
			Transactions: handlers.NewTransactionHandler(transactionService, importService, a.cfg.Server.MaxUploadBytes),
			Reports:      handlers.NewReportHandler(a.reportService()),
			Alerts:       handlers.NewAlertHandler(services.NewRuleService(a.ruleRepo, a.events), services.NewAlertService(a.alertRepo)),
			Budgets:      handlers.NewBudgetHandler(services.NewBudgetService(a.budgetRepo), services.NewGoalService(a.goalRepo)),
			Recurring:    handlers.NewRecurringHandler(services.NewRecurringService(a.recurringRepo)),
			Contacts:     handlers.NewContactHandler(services.NewContactService(a.contactRepo)),
			Health:       handlers.NewHealthCheckHandler(a.db.DB, deps),
		},
	)

	return srv.Run(ctx)
}

// eventPublisher picks the AMQP exchange when AMQP_ENABLED is set and the
// in-process evaluator otherwise. The returned func closes the broker client.
func (a *app) eventPublisher() (services.TransactionEventPublisher, func(), error) {
	var publisher services.TransactionEventPublisher = services.NewLocalEventPublisher(a.evaluator)
	closer := func() {}
	if a.cfg.AMQP.Enabled {
		client, err := messaging.NewClient(a.cfg.AMQP)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to message broker: %w", err)
		}
		closer = func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close message broker client", "error", err)
			}
		}
		publisher = client
	}
	return &countingPublisher{next: publisher, metrics: a.metrics}, closer, nil
}

// cleanupCounters purges expired rate-limit and dedup rows when they live in
// the database
func cleanupCounters(ctx context.Context, a *app) {
	ticker := time.NewTicker(counterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := a.db.CleanupExpiredCounters(ctx)
			if err != nil {
				slog.Error("Failed to clean up expired counters", "error", err)
				continue
			}
			slog.Debug("Expired counters removed", "count", removed)
		}
	}
}

type countingPublisher struct {
	next    services.TransactionEventPublisher
	metrics services.MetricsRecorderInterface
}

func (p *countingPublisher) PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error {
	err := p.next.PublishTransactionCreated(ctx, event)
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.metrics.IncrementCounter("event.published", map[string]string{"status": status})
	return err
}
