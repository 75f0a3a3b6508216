package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the scheduler's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	JobsTotal        *prometheus.CounterVec
	LaneConfigErrors prometheus.Counter
	EventsPublished  *prometheus.CounterVec
	StoreOperations  *prometheus.CounterVec
}

// Config holds metrics configuration
type Config struct {
	Namespace string
}

// DefaultConfig returns default metrics configuration
func DefaultConfig() *Config {
	return &Config{Namespace: "smt_scheduler"}
}

// New creates a registry with Go/process collectors and the scheduler metrics.
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	m.RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "autoschedule_runs_total",
			Help:      "Auto-schedule runs by result",
		},
		[]string{"result"},
	)

	m.RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "autoschedule_run_duration_seconds",
			Help:      "Wall-clock duration of auto-schedule runs",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	m.JobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "autoschedule_jobs_total",
			Help:      "Work orders processed by auto-schedule runs, by outcome",
		},
		[]string{"outcome"},
	)

	m.LaneConfigErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "lane_config_errors_total",
			Help:      "Production lines excluded from a run because of configuration errors",
		},
	)

	m.EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "schedule_events_published_total",
			Help:      "Schedule notifications by publish status",
		},
		[]string{"status"},
	)

	m.StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "store_operations_total",
			Help:      "Work-order store writes issued by runs",
		},
		[]string{"operation", "status"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RunsTotal,
		m.RunDuration,
		m.JobsTotal,
		m.LaneConfigErrors,
		m.EventsPublished,
		m.StoreOperations,
	)

	return m
}

// Handler returns the /metrics handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRun records a finished run: result is completed, partial, rejected or error.
func (m *Metrics) RecordRun(result string, duration time.Duration) {
	m.RunsTotal.WithLabelValues(result).Inc()
	if duration > 0 {
		m.RunDuration.Observe(duration.Seconds())
	}
}

func (m *Metrics) RecordJobs(outcome string, n int) {
	if n > 0 {
		m.JobsTotal.WithLabelValues(outcome).Add(float64(n))
	}
}

func (m *Metrics) RecordLaneConfigErrors(n int) {
	if n > 0 {
		m.LaneConfigErrors.Add(float64(n))
	}
}

func (m *Metrics) RecordEventPublish(success bool) {
	m.EventsPublished.WithLabelValues(statusLabel(success)).Inc()
}

func (m *Metrics) RecordStoreWrite(operation string, success bool) {
	m.StoreOperations.WithLabelValues(operation, statusLabel(success)).Inc()
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
