package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	RecipesGeneratedTotal *prometheus.CounterVec
	WebhookEventsTotal    *prometheus.CounterVec
	ProviderCallsTotal    *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics on registry. A nil registry
// gets a fresh one.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantrychef_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pantrychef_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		RecipesGeneratedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantrychef_recipes_generated_total",
				Help: "Recipes returned, by source (catalog or fallback)",
			},
			[]string{"source"},
		),
		WebhookEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantrychef_webhook_events_total",
				Help: "Verified webhook events, by event type",
			},
			[]string{"type"},
		),
		ProviderCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantrychef_provider_calls_total",
				Help: "Payment provider calls, by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RecipesGeneratedTotal,
		m.WebhookEventsTotal,
		m.ProviderCallsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func (m *Metrics) RecipeGenerated(source string) {
	if m == nil {
		return
	}
	m.RecipesGeneratedTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) WebhookEvent(eventType string) {
	if m == nil {
		return
	}
	m.WebhookEventsTotal.WithLabelValues(eventType).Inc()
}

func (m *Metrics) ProviderCall(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.ProviderCallsTotal.WithLabelValues(op, outcome).Inc()
}
