package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the template service
type Metrics struct {
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec
	TemplateLookupsTotal       *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "template_service_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "template_service_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		TemplateLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "template_service_template_lookups_total",
				Help: "Total number of template lookups by result",
			},
			[]string{"result"},
		),
		registry: reg,
	}

	reg.MustRegister(m.HTTPRequestsTotal)
	reg.MustRegister(m.HTTPRequestDurationSeconds)
	reg.MustRegister(m.TemplateLookupsTotal)

	return m
}

// Handler returns an http.Handler serving this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
