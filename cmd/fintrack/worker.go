package main

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/messaging"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/spf13/cobra"
)

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume transaction events and evaluate alert rules",
		Long: `Consume transaction-created events from the AMQP queue, evaluate the
owner's alert rules and deliver the resulting notifications. Requires
AMQP_ENABLED=true.`,
		RunE: runWorker,
	}
}

func runWorker(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.cfg.AMQP.Enabled {
		return fmt.Errorf("worker requires AMQP_ENABLED=true")
	}

	client, err := messaging.NewClient(a.cfg.AMQP)
	if err != nil {
		return fmt.Errorf("failed to connect to message broker: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close message broker client", "error", err)
		}
	}()

	a.dispatcher.Start(ctx)
	defer a.dispatcher.Stop()

	slog.Info("Worker consuming transaction events", "queue", a.cfg.AMQP.Queue)
	return client.Consume(ctx, evaluateEvent(a.evaluator, a.metrics))
}

// evaluateEvent runs the evaluator under the event id as correlation id
func evaluateEvent(evaluator services.AlertEvaluatorInterface, metrics services.MetricsRecorderInterface) messaging.EventHandler {
	return func(ctx context.Context, event models.TransactionEvent) error {
		ctx = services.WithCorrelationID(ctx, event.EventID.String())

		alerts, err := evaluator.Evaluate(ctx, event)
		if err != nil {
			metrics.IncrementCounter("event.consumed", map[string]string{"outcome": "error"})
			return err
		}

		metrics.IncrementCounter("event.consumed", map[string]string{"outcome": "ok"})
		slog.DebugContext(ctx, "Transaction event evaluated",
			"transaction_id", event.TransactionID,
			"alerts", len(alerts),
		)
		return nil
	}
}
