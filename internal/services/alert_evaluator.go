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

const suppressedRateLimited = "rate_limited"

type AlertEvaluatorConfig struct {
	DefaultHighAmount decimal.Decimal
}

type AlertEvaluator struct {
	ruleRepo   repositories.AlertRuleRepositoryInterface
	alertRepo  repositories.AlertHistoryRepositoryInterface
	limiter    AlertRateLimiter
	dispatcher NotificationDispatcherInterface
	metrics    MetricsRecorderInterface
	events     EventLoggerInterface
	config     AlertEvaluatorConfig
	logger     *slog.Logger
}

func NewAlertEvaluator(
	ruleRepo repositories.AlertRuleRepositoryInterface,
	alertRepo repositories.AlertHistoryRepositoryInterface,
	limiter AlertRateLimiter,
	dispatcher NotificationDispatcherInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	config AlertEvaluatorConfig,
) AlertEvaluatorInterface {
	return &AlertEvaluator{
		ruleRepo:   ruleRepo,
		alertRepo:  alertRepo,
		limiter:    limiter,
		dispatcher: dispatcher,
		metrics:    metrics,
		events:     events,
		config:     config,
		logger:     slog.Default(),
	}
}

// Evaluate runs the user's active rules against one transaction event. A
// user over the rate limit is skipped entirely and nothing is returned. The
// error return is reserved for storage failures the caller may retry.
func (e *AlertEvaluator) Evaluate(ctx context.Context, event models.TransactionEvent) ([]models.AlertHistory, error) {
	start := time.Now()
	defer func() { e.metrics.RecordProcessingTime("alert.evaluation", time.Since(start)) }()

	userKey := event.UserID.String()

	limited, err := e.limiter.IsLimited(ctx, userKey)
	if err != nil {
		e.rateLimitError("is_limited", event, err)
	}
	if limited {
		e.suppress(ctx, event)
		return nil, nil
	}

	rules, err := e.ruleRepo.ListActiveByUser(ctx, event.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load alert rules: %w", err)
	}

	created := make([]models.AlertHistory, 0, 1)

	if alert := e.checkHighAmount(event, rules); alert != nil {
		ok, err := e.persist(ctx, event, alert)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, *alert)
		}
	}

	e.checkUnimplemented(event, rules)

	return created, nil
}

// checkHighAmount applies to debit events only. The threshold comes from the
// first active HIGH_AMOUNT rule that sets one, else the service default.
func (e *AlertEvaluator) checkHighAmount(event models.TransactionEvent, rules []models.AlertRule) *models.AlertHistory {
	if !event.IsDebit() {
		return nil
	}

	threshold := e.config.DefaultHighAmount
	var rule *models.AlertRule
	for i := range rules {
		if rules[i].RuleType == models.RuleTypeHighAmount && rules[i].ThresholdAmount != nil {
			rule = &rules[i]
			threshold = *rules[i].ThresholdAmount
			break
		}
	}

	amount := event.AbsAmount()
	if !amount.GreaterThan(threshold) {
		return nil
	}

	alert := &models.AlertHistory{
		UserID:    event.UserID,
		AlertType: models.AlertTypeHighAmount,
		Severity:  models.SeverityWarning,
		Message:   fmt.Sprintf("High transaction detected: $%s for '%s'", amount.StringFixed(2), describe(event)),
		Category:  event.Category,
	}
	if rule != nil {
		alert.RuleID = &rule.ID
	}
	alert.SetMetadata("transactionId", event.TransactionID.String())
	alert.SetMetadata("amount", amount.StringFixed(2))
	alert.SetMetadata("threshold", threshold.StringFixed(2))

	return alert
}

// checkUnimplemented notes rule types that are accepted but not evaluated yet
func (e *AlertEvaluator) checkUnimplemented(event models.TransactionEvent, rules []models.AlertRule) {
	for i := range rules {
		switch rules[i].RuleType {
		case models.RuleTypeDailyLimitExceeded, models.RuleTypeUnusualCategory, models.RuleTypeDuplicateTransaction:
			e.logger.Debug("rule type not evaluated",
				slog.String("rule_id", rules[i].ID.String()),
				slog.String("rule_type", string(rules[i].RuleType)),
				slog.String("transaction_id", event.TransactionID.String()),
			)
		}
	}
}

// persist takes a rate-limit slot before writing so concurrent events cannot
// store more alerts than the window allows. A failed write gives the slot
// back. ok is false when the slot was refused.
func (e *AlertEvaluator) persist(ctx context.Context, event models.TransactionEvent, alert *models.AlertHistory) (bool, error) {
	allowed, err := e.limiter.Reserve(ctx, event.UserID.String())
	reserved := err == nil
	if err != nil {
		e.rateLimitError("reserve", event, err)
	}
	if !allowed {
		e.suppress(ctx, event)
		return false, nil
	}

	if err := e.alertRepo.Create(ctx, alert); err != nil {
		if reserved {
			if releaseErr := e.limiter.Release(ctx, event.UserID.String()); releaseErr != nil {
				e.rateLimitError("release", event, releaseErr)
			}
		}
		return false, fmt.Errorf("failed to create alert: %w", err)
	}

	e.events.LogAlertCreated(ctx, alert)
	e.metrics.IncrementCounter("alert.created", map[string]string{
		"alert_type": string(alert.AlertType),
	})

	if !e.dispatcher.Dispatch(*alert) {
		e.logger.Warn("notification queue full, alert not dispatched",
			slog.String("alert_id", alert.ID.String()),
			slog.String("user_id", alert.UserID.String()),
		)
	}

	return true, nil
}

func (e *AlertEvaluator) suppress(ctx context.Context, event models.TransactionEvent) {
	e.logger.Warn("alert evaluation skipped, user is rate limited",
		slog.String("user_id", event.UserID.String()),
		slog.String("transaction_id", event.TransactionID.String()),
	)
	e.events.LogAlertSuppressed(ctx, event.UserID, event.TransactionID, suppressedRateLimited)
	e.metrics.IncrementCounter("alert.suppressed", map[string]string{
		"reason": suppressedRateLimited,
	})
}

func (e *AlertEvaluator) rateLimitError(op string, event models.TransactionEvent, err error) {
	e.logger.Error("rate limit store failed",
		slog.String("operation", op),
		slog.String("user_id", event.UserID.String()),
		slog.String("error", err.Error()),
	)
	e.metrics.IncrementCounter("alert.rate_limit.error", map[string]string{
		"operation": op,
	})
}

func describe(event models.TransactionEvent) string {
	if event.Description != "" {
		return event.Description
	}
	return event.MerchantName
}
