package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "glint").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "glint",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the engine's Prometheus collectors. One instance is
// shared by all pages of an app; its counters are goroutine-safe, so
// session loops record into it directly.
type Metrics struct {
	eventsTotal        *prometheus.CounterVec
	eventDuration      *prometheus.HistogramVec
	patchesSent        prometheus.Counter
	activeSessions     prometheus.Gauge
	mountsTotal        *prometheus.CounterVec
	activeToasts       prometheus.Gauge
	toastsTotal        *prometheus.CounterVec
	sortsTotal         prometheus.Counter
	validationFailures prometheus.Counter
}

// NewMetrics builds and registers the engine collectors.
//
// Metrics collected:
//   - glint_events_total: Counter of events by type and outcome
//   - glint_event_duration_seconds: Histogram of dispatch duration
//   - glint_patches_sent_total: Counter of patches sent to clients
//   - glint_active_sessions: Gauge of live WebSocket sessions
//   - glint_feature_mounts_total: Counter of binding outcomes
//   - glint_active_toasts: Gauge of toasts currently shown
//   - glint_toasts_total: Counter of toasts by kind
//   - glint_sorts_total: Counter of applied table sorts
//   - glint_validation_failures_total: Counter of blocked submissions
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of dispatched events",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "outcome"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event dispatch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"type"}),

		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_sent_total",
			Help:        "Total number of patches sent to clients",
			ConstLabels: config.ConstLabels,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of active WebSocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		mountsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "feature_mounts_total",
			Help:        "Total feature binding outcomes",
			ConstLabels: config.ConstLabels,
		}, []string{"feature", "status"}),

		activeToasts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_toasts",
			Help:        "Number of toasts currently in a document",
			ConstLabels: config.ConstLabels,
		}),

		toastsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_total",
			Help:        "Total toasts shown by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		sortsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sorts_total",
			Help:        "Total applied table sorts",
			ConstLabels: config.ConstLabels,
		}),

		validationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "validation_failures_total",
			Help:        "Total form submissions blocked by validation",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// EventMiddleware returns page middleware that counts and times every
// dispatched event.
func (m *Metrics) EventMiddleware() page.Middleware {
	return func(next page.Handler) page.Handler {
		return func(ev *page.Event) {
			start := time.Now()
			next(ev)

			typ := ev.Type.String()
			m.eventDuration.WithLabelValues(typ).Observe(time.Since(start).Seconds())
			outcome := "handled"
			if ev.DefaultPrevented() {
				outcome = "prevented"
			}
			m.eventsTotal.WithLabelValues(typ, outcome).Inc()
		}
	}
}

// RecordPatches records patches sent to a client.
func (m *Metrics) RecordPatches(count int) {
	m.patchesSent.Add(float64(count))
}

// SessionStarted records a new live session.
func (m *Metrics) SessionStarted() {
	m.activeSessions.Inc()
}

// SessionEnded records a closed session.
func (m *Metrics) SessionEnded() {
	m.activeSessions.Dec()
}

// RecordMounts records every binding outcome of a page's mount report.
func (m *Metrics) RecordMounts(report *page.MountReport) {
	for _, rec := range report.Records {
		m.mountsTotal.WithLabelValues(rec.Feature, rec.Status.String()).Inc()
	}
}

// ToastShown feeds the toast gauge; it satisfies the toast feature's
// observer.
func (m *Metrics) ToastShown(kind string) {
	m.activeToasts.Inc()
	m.toastsTotal.WithLabelValues(kind).Inc()
}

// ToastRemoved feeds the toast gauge.
func (m *Metrics) ToastRemoved(string) {
	m.activeToasts.Dec()
}

// SortApplied counts a table sort; it matches the sortable feature's
// hook signature.
func (m *Metrics) SortApplied(int, string) {
	m.sortsTotal.Inc()
}

// ValidationBlocked counts a blocked submission; it matches the
// validate feature's hook signature.
func (m *Metrics) ValidationBlocked(*dom.Node, int) {
	m.validationFailures.Inc()
}
