package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) EventLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) LogAlertCreated(ctx context.Context, alert *models.AlertHistory) {
	attrs := []slog.Attr{
		slog.String("event_type", "alert_created"),
		slog.String("alert_id", alert.ID.String()),
		slog.String("user_id", alert.UserID.String()),
		slog.String("alert_type", string(alert.AlertType)),
		slog.String("severity", string(alert.Severity)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if alert.RuleID != nil {
		attrs = append(attrs, slog.String("rule_id", alert.RuleID.String()))
	}
	if alert.Category != "" {
		attrs = append(attrs, slog.String("category", alert.Category))
	}

	el.logger.LogAttrs(ctx, slog.LevelInfo, "alert created", attrs...)
}

func (el *EventLogger) LogAlertSuppressed(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID, reason string) {
	el.logger.WarnContext(ctx, "alert evaluation suppressed",
		slog.String("event_type", "alert_suppressed"),
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogNotificationSent(ctx context.Context, alertID uuid.UUID, channel models.NotificationChannel, attempts int) {
	el.logger.InfoContext(ctx, "notification sent",
		slog.String("event_type", "notification_sent"),
		slog.String("alert_id", alertID.String()),
		slog.String("channel", string(channel)),
		slog.Int("attempts", attempts),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogNotificationFailed(ctx context.Context, alertID uuid.UUID, channel models.NotificationChannel, errorMsg string, attempts int) {
	el.logger.WarnContext(ctx, "notification failed",
		slog.String("event_type", "notification_failed"),
		slog.String("alert_id", alertID.String()),
		slog.String("channel", string(channel)),
		slog.String("error", errorMsg),
		slog.Int("attempts", attempts),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogRuleStateChange(ctx context.Context, ruleID uuid.UUID, oldState, newState models.RuleState) {
	el.logger.InfoContext(ctx, "alert rule state change",
		slog.String("event_type", "rule_state_change"),
		slog.String("rule_id", ruleID.String()),
		slog.String("old_state", string(oldState)),
		slog.String("new_state", string(newState)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogBudgetAlertRaised(ctx context.Context, budget *models.Budget, alertType models.AlertType, spent decimal.Decimal) {
	el.logger.InfoContext(ctx, "budget alert raised",
		slog.String("event_type", "budget_alert_raised"),
		slog.String("budget_id", budget.ID.String()),
		slog.String("user_id", budget.UserID.String()),
		slog.String("category", budget.Category),
		slog.String("month", budget.Month),
		slog.String("alert_type", string(alertType)),
		slog.String("spent", spent.StringFixed(2)),
		slog.String("budget", budget.Amount.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	el.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogImportCompleted(ctx context.Context, userID uuid.UUID, format string, result *models.ImportResult, durationMs int64) {
	el.logger.InfoContext(ctx, "transaction import completed",
		slog.String("event_type", "import_completed"),
		slog.String("user_id", userID.String()),
		slog.String("format", format),
		slog.Int("total_rows", result.TotalRows),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("error_count", result.ErrorCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type correlationKey string

// CorrelationIDKey is the context key the worker and middleware store ids under
const CorrelationIDKey correlationKey = "correlation_id"

// WithCorrelationID returns a context carrying id for event log records
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
