// Package metrics holds the Prometheus collectors for the web service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all collectors exported by the web service.
type Metrics struct {
	registry *prometheus.Registry

	GatewayRequests *prometheus.CounterVec
	GatewayLatency  *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	HTTPLatency     *prometheus.HistogramVec
	FormSubmissions *prometheus.CounterVec
	ActiveSearches  prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		GatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "visadesk_gateway_requests_total",
			Help: "Backend API calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		GatewayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "visadesk_gateway_request_duration_seconds",
			Help:    "Latency of backend API calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "visadesk_web_http_requests_total",
			Help: "Browser-facing HTTP requests by method and status",
		}, []string{"method", "status"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "visadesk_web_http_request_duration_seconds",
			Help:    "Latency of browser-facing HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		FormSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "visadesk_web_form_submissions_total",
			Help: "Form submissions by form and result",
		}, []string{"form", "result"}),
		ActiveSearches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "visadesk_web_active_searches",
			Help: "Dashboard searches currently waiting on the backend",
		}),
	}
	registry.MustRegister(
		m.GatewayRequests,
		m.GatewayLatency,
		m.HTTPRequests,
		m.HTTPLatency,
		m.FormSubmissions,
		m.ActiveSearches,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveGatewayRequest records one backend call.
func (m *Metrics) ObserveGatewayRequest(operation string, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GatewayRequests.WithLabelValues(operation, outcome).Inc()
	m.GatewayLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest records one served browser request.
func (m *Metrics) ObserveHTTPRequest(method string, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, status).Inc()
	m.HTTPLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveForm records a form submission result.
func (m *Metrics) ObserveForm(form string, result string) {
	if m == nil {
		return
	}
	m.FormSubmissions.WithLabelValues(form, result).Inc()
}

// SearchStarted increments the in-flight search gauge and returns its
// matching decrement.
func (m *Metrics) SearchStarted() func() {
	if m == nil {
		return func() {}
	}
	m.ActiveSearches.Inc()
	return m.ActiveSearches.Dec
}
