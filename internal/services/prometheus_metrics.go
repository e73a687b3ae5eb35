package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	alertsCreated            *prometheus.CounterVec
	alertsSuppressed         *prometheus.CounterVec
	rateLimitErrors          *prometheus.CounterVec
	alertEvaluationDuration  prometheus.Histogram
	budgetAlerts             *prometheus.CounterVec
	notificationsTotal       *prometheus.CounterVec
	notificationDuration     prometheus.Histogram
	notificationQueueDepth   prometheus.Gauge
	importRows               *prometheus.CounterVec
	reportDuration           *prometheus.HistogramVec
	reportSourceDegraded     *prometheus.CounterVec
	eventsPublished          *prometheus.CounterVec
	eventsConsumed           *prometheus.CounterVec
	circuitBreakerState      *prometheus.GaugeVec
	transactionsCreatedTotal *prometheus.CounterVec
	httpPanics               *prometheus.CounterVec
	recurringRuns            *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the collectors on reg. Tests pass
// a fresh prometheus.NewRegistry() to avoid duplicate registration panics.
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		alertsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alerts_created_total",
				Help: "Total number of alerts persisted",
			},
			[]string{"alert_type"},
		),
		alertsSuppressed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alerts_suppressed_total",
				Help: "Total number of alert evaluations dropped",
			},
			[]string{"reason"},
		),
		rateLimitErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alerts_rate_limit_errors_total",
				Help: "Total number of rate limit store failures",
			},
			[]string{"operation"},
		),
		alertEvaluationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "alert_evaluation_duration_milliseconds",
				Help:    "Alert evaluation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		budgetAlerts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alerts_total",
				Help: "Total number of budget alerts raised by the scheduler",
			},
			[]string{"alert_type"},
		),
		notificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Total number of notification deliveries",
			},
			[]string{"channel", "status"},
		),
		notificationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "notification_delivery_duration_milliseconds",
				Help:    "Notification delivery duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		notificationQueueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "notification_queue_depth",
				Help: "Current number of alerts waiting for delivery",
			},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_import_rows_total",
				Help: "Total number of imported rows by outcome",
			},
			[]string{"format", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"section"},
		),
		reportSourceDegraded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_source_degraded_total",
				Help: "Total number of report data-source fallbacks",
			},
			[]string{"source"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_events_published_total",
				Help: "Total number of transaction events published",
			},
			[]string{"status"},
		),
		eventsConsumed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_events_consumed_total",
				Help: "Total number of transaction events consumed by outcome",
			},
			[]string{"outcome"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		transactionsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions stored",
			},
			[]string{"source"},
		),
		httpPanics: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_panics_total",
				Help: "Handler panics recovered by the HTTP server",
			},
			[]string{"method", "route"},
		),
		recurringRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_occurrences_total",
				Help: "Recurring transaction occurrences processed",
			},
			[]string{"outcome"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "alert.created":
		m.alertsCreated.WithLabelValues(tags["alert_type"]).Inc()
	case "alert.suppressed":
		m.alertsSuppressed.WithLabelValues(tags["reason"]).Inc()
	case "alert.rate_limit.error":
		m.rateLimitErrors.WithLabelValues(tags["operation"]).Inc()
	case "budget.alert":
		m.budgetAlerts.WithLabelValues(tags["alert_type"]).Inc()
	case "notification.delivery":
		if status != "" {
			m.notificationsTotal.WithLabelValues(tags["channel"], status).Inc()
		}
	case "import.row":
		if status != "" {
			m.importRows.WithLabelValues(tags["format"], status).Inc()
		}
	case "report.source.degraded":
		m.reportSourceDegraded.WithLabelValues(tags["source"]).Inc()
	case "event.published":
		m.eventsPublished.WithLabelValues(status).Inc()
	case "event.consumed":
		m.eventsConsumed.WithLabelValues(tags["outcome"]).Inc()
	case "transaction.created":
		m.transactionsCreatedTotal.WithLabelValues(tags["source"]).Inc()
	case "http.panic":
		m.httpPanics.WithLabelValues(tags["method"], tags["route"]).Inc()
	case "recurring.occurrence":
		m.recurringRuns.WithLabelValues(tags["outcome"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "alert.evaluation":
		m.alertEvaluationDuration.Observe(float64(duration.Milliseconds()))
	case "notification.delivery":
		m.notificationDuration.Observe(float64(duration.Milliseconds()))
	case "report.full", "report.summary", "report.categories", "report.top_expenses",
		"report.insights", "report.monthly", "report.goals":
		m.reportDuration.WithLabelValues(name[len("report."):]).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "notification.queue_depth":
		m.notificationQueueDepth.Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

// NoopMetrics discards everything; used when metrics are disabled
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)     {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
