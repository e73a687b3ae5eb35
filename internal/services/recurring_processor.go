package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

type RecurringProcessorConfig struct {
	Interval     time.Duration
	BatchSize    int
	CatchUpLimit int
}

func DefaultRecurringProcessorConfig() RecurringProcessorConfig {
	return RecurringProcessorConfig{
		Interval:     time.Hour,
		BatchSize:    500,
		CatchUpLimit: 31,
	}
}

// RecurringProcessor posts every due occurrence of the recurring schedules as
// a regular transaction through the transaction service, so categorization,
// events and alerts apply to it like to any other transaction.
type RecurringProcessor struct {
	recurringRepo   repositories.RecurringTransactionRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	transactions    TransactionServiceInterface
	metrics         MetricsRecorderInterface
	config          RecurringProcessorConfig
	logger          *slog.Logger
	now             func() time.Time
}

type RecurringProcessorOption func(*RecurringProcessor)

func WithRecurringClock(now func() time.Time) RecurringProcessorOption {
	return func(p *RecurringProcessor) {
		p.now = now
	}
}

func NewRecurringProcessor(
	recurringRepo repositories.RecurringTransactionRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	transactions TransactionServiceInterface,
	metrics MetricsRecorderInterface,
	config RecurringProcessorConfig,
	opts ...RecurringProcessorOption,
) *RecurringProcessor {
	defaults := DefaultRecurringProcessorConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.CatchUpLimit <= 0 {
		config.CatchUpLimit = defaults.CatchUpLimit
	}

	p := &RecurringProcessor{
		recurringRepo:   recurringRepo,
		transactionRepo: transactionRepo,
		transactions:    transactions,
		metrics:         metrics,
		config:          config,
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start processes immediately and then on every interval until ctx ends
func (p *RecurringProcessor) Start(ctx context.Context) {
	p.logger.Info("starting recurring transaction processor",
		slog.Duration("interval", p.config.Interval),
	)

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	p.runAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("recurring transaction processor stopped")
			return
		case <-ticker.C:
			p.runAndLog(ctx)
		}
	}
}

func (p *RecurringProcessor) runAndLog(ctx context.Context) {
	posted, err := p.RunOnce(ctx)
	if err != nil {
		p.logger.Error("recurring processing failed", slog.String("error", err.Error()))
		return
	}
	p.logger.Info("recurring processing completed", slog.Int("transactions_posted", posted))
}

// RunOnce posts the due occurrences of up to BatchSize schedules and returns
// how many transactions were stored. A failing schedule is logged and skipped.
func (p *RecurringProcessor) RunOnce(ctx context.Context) (int, error) {
	now := p.now()

	due, err := p.recurringRepo.ListDue(ctx, now, p.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list due recurring transactions: %w", err)
	}

	total := 0
	for i := range due {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		posted, err := p.process(ctx, &due[i], now)
		total += posted
		if err != nil {
			p.logger.Error("failed to process recurring transaction",
				slog.String("recurring_id", due[i].ID.String()),
				slog.String("user_id", due[i].UserID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return total, nil
}

// process posts the schedule's occurrences up to now, at most CatchUpLimit of
// them, and saves the advanced schedule even when a post fails midway
func (p *RecurringProcessor) process(ctx context.Context, recurring *models.RecurringTransaction, now time.Time) (int, error) {
	posted, steps := 0, 0
	var postErr error

	for steps < p.config.CatchUpLimit && recurring.IsDue(now) {
		stored, err := p.post(ctx, recurring)
		if err != nil {
			postErr = err
			break
		}
		if stored {
			posted++
			postedAt := p.now()
			recurring.LastPostedAt = &postedAt
		}
		recurring.Advance()
		steps++
	}

	if steps > 0 {
		if err := p.recurringRepo.Update(ctx, recurring); err != nil {
			return posted, errors.Join(postErr, fmt.Errorf("failed to advance schedule: %w", err))
		}
	}
	return posted, postErr
}

// post stores the current occurrence unless an earlier run already did. It
// reports whether a transaction was stored.
func (p *RecurringProcessor) post(ctx context.Context, recurring *models.RecurringTransaction) (bool, error) {
	occurrence := recurring.Occurrence()

	exists, err := p.transactionRepo.ExistsByExternalID(ctx, recurring.UserID, occurrence.ExternalID)
	if err != nil {
		return false, fmt.Errorf("failed to check occurrence %s: %w", occurrence.ExternalID, err)
	}
	if exists {
		p.metrics.IncrementCounter("recurring.occurrence", map[string]string{"outcome": "skipped"})
		return false, nil
	}

	if err := p.transactions.Record(ctx, occurrence); err != nil {
		p.metrics.IncrementCounter("recurring.occurrence", map[string]string{"outcome": "failed"})
		return false, fmt.Errorf("failed to post occurrence %s: %w", occurrence.ExternalID, err)
	}

	p.metrics.IncrementCounter("recurring.occurrence", map[string]string{"outcome": "posted"})
	p.logger.Debug("recurring occurrence posted",
		slog.String("recurring_id", recurring.ID.String()),
		slog.String("transaction_id", occurrence.ID.String()),
		slog.String("date", occurrence.TransactionDate.Format(models.RecurringDateLayout)),
	)
	return true, nil
}
