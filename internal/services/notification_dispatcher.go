package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

type DispatcherConfig struct {
	Workers   int
	QueueSize int
	// MaxAttempts per channel; 1 disables retry
	MaxAttempts    int
	InitialBackoff time.Duration
}

func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Workers:        4,
		QueueSize:      256,
		MaxAttempts:    1,
		InitialBackoff: 500 * time.Millisecond,
	}
}

// NotificationDispatcher fans alerts out to every configured notifier from a
// bounded queue drained by a fixed worker pool. Delivery outcomes are written
// to the notification log; none are returned to the producer.
type NotificationDispatcher struct {
	notifiers   []Notifier
	logRepo     repositories.NotificationLogRepositoryInterface
	contactRepo repositories.NotificationContactRepositoryInterface
	metrics     MetricsRecorderInterface
	events      EventLoggerInterface
	config      DispatcherConfig
	logger      *slog.Logger
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error

	queue   chan models.AlertHistory
	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

func NewNotificationDispatcher(
	notifiers []Notifier,
	logRepo repositories.NotificationLogRepositoryInterface,
	contactRepo repositories.NotificationContactRepositoryInterface,
	metrics MetricsRecorderInterface,
	events EventLoggerInterface,
	config DispatcherConfig,
) *NotificationDispatcher {
	defaults := DefaultDispatcherConfig()
	if config.Workers <= 0 {
		config.Workers = defaults.Workers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.InitialBackoff <= 0 {
		config.InitialBackoff = defaults.InitialBackoff
	}

	return &NotificationDispatcher{
		notifiers:   notifiers,
		logRepo:     logRepo,
		contactRepo: contactRepo,
		metrics:     metrics,
		events:      events,
		config:      config,
		logger:      slog.Default(),
		now:         time.Now,
		sleep:       sleepContext,
		queue:       make(chan models.AlertHistory, config.QueueSize),
	}
}

// Start launches the worker pool. Workers exit when ctx ends or after Stop
// once the queue is drained.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	d.logger.Info("starting notification dispatcher",
		slog.Int("workers", d.config.Workers),
		slog.Int("queue_size", d.config.QueueSize),
		slog.Int("max_attempts", d.config.MaxAttempts),
	)

	for i := 0; i < d.config.Workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
}

// Stop closes the queue and waits for in-flight deliveries. Dispatch after
// Stop reports false.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info("notification dispatcher stopped")
}

// Dispatch enqueues alert without blocking. It reports false when the queue
// is full or the dispatcher is stopped.
func (d *NotificationDispatcher) Dispatch(alert models.AlertHistory) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}

	select {
	case d.queue <- alert:
		d.metrics.RecordGauge("notification.queue_depth", float64(len(d.queue)), nil)
		return true
	default:
		d.metrics.IncrementCounter("notification.delivery", map[string]string{
			"channel": "queue",
			"status":  "dropped",
		})
		return false
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-d.queue:
			if !ok {
				return
			}
			d.metrics.RecordGauge("notification.queue_depth", float64(len(d.queue)), nil)
			d.Deliver(ctx, alert)
		}
	}
}

// Deliver sends alert over every notifier synchronously and records one log
// entry per channel
func (d *NotificationDispatcher) Deliver(ctx context.Context, alert models.AlertHistory) []models.DeliveryResult {
	start := time.Now()
	defer func() { d.metrics.RecordProcessingTime("notification.delivery", time.Since(start)) }()

	recipient := d.emailRecipient(ctx, alert)
	results := make([]models.DeliveryResult, 0, len(d.notifiers))

	for _, notifier := range d.notifiers {
		to := ""
		if notifier.Channel() == models.ChannelEmail {
			to = recipient
		}
		results = append(results, d.deliverOne(ctx, notifier, alert, to))
	}

	return results
}

func (d *NotificationDispatcher) deliverOne(ctx context.Context, notifier Notifier, alert models.AlertHistory, recipient string) models.DeliveryResult {
	entry := &models.NotificationLog{
		AlertID:   alert.ID,
		UserID:    alert.UserID,
		Channel:   notifier.Channel(),
		Recipient: recipient,
		Status:    models.DeliveryPending,
	}
	logged := true
	if err := d.logRepo.Create(ctx, entry); err != nil {
		logged = false
		d.logger.Error("failed to create notification log",
			slog.String("alert_id", alert.ID.String()),
			slog.String("channel", string(notifier.Channel())),
			slog.String("error", err.Error()),
		)
	}

	var result models.DeliveryResult
	for attempt := 1; attempt <= d.config.MaxAttempts; attempt++ {
		result = notifier.Send(ctx, alert, recipient)
		entry.Apply(result, d.now())
		if result.Delivered() || attempt == d.config.MaxAttempts {
			break
		}
		if err := d.sleep(ctx, d.backoff(attempt)); err != nil {
			break
		}
	}

	if logged {
		if err := d.logRepo.Update(ctx, entry); err != nil {
			d.logger.Error("failed to update notification log",
				slog.String("notification_id", entry.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if result.Delivered() {
		d.events.LogNotificationSent(ctx, alert.ID, notifier.Channel(), entry.Attempts)
	} else {
		d.events.LogNotificationFailed(ctx, alert.ID, notifier.Channel(), result.Error, entry.Attempts)
	}
	d.metrics.IncrementCounter("notification.delivery", map[string]string{
		"channel": string(notifier.Channel()),
		"status":  string(result.Status),
	})

	return result
}

// emailRecipient returns "" when the user has no contact on file
func (d *NotificationDispatcher) emailRecipient(ctx context.Context, alert models.AlertHistory) string {
	if !d.hasChannel(models.ChannelEmail) {
		return ""
	}

	contact, err := d.contactRepo.GetByUserID(ctx, alert.UserID)
	if err != nil {
		if !errors.Is(err, repositories.ErrContactNotFound) {
			d.logger.Error("failed to load notification contact",
				slog.String("user_id", alert.UserID.String()),
				slog.String("error", err.Error()),
			)
		}
		return ""
	}
	return contact.Email
}

func (d *NotificationDispatcher) hasChannel(channel models.NotificationChannel) bool {
	for _, n := range d.notifiers {
		if n.Channel() == channel {
			return true
		}
	}
	return false
}

func (d *NotificationDispatcher) backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * d.config.InitialBackoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
