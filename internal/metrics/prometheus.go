// Package metrics provides Prometheus metrics for the portfolio web host.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the metrics of one server instance.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	pageRenders         *prometheus.CounterVec
	logoFallbacks       *prometheus.CounterVec
}

// NewManager creates a manager with its own registry unless WithRegistry
// is given, so several servers (and tests) never collide on registration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "portfolio",
		subsystem:        "web",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.pageRenders = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "page_renders_total",
			Help:      "Total number of rendered templates by name",
		},
		[]string{"template"},
	)

	m.logoFallbacks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "logo_fallbacks_total",
			Help:      "Logo requests answered with the placeholder image",
		},
		[]string{"logo"},
	)
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(d.Seconds())
}

// RecordPageRender records a rendered template.
func (m *Manager) RecordPageRender(template string) {
	m.pageRenders.WithLabelValues(template).Inc()
}

// RecordLogoFallback records a missing logo replaced by the placeholder.
func (m *Manager) RecordLogoFallback(logo string) {
	m.logoFallbacks.WithLabelValues(logo).Inc()
}

// Registry exposes the registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
