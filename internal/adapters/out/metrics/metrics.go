// Package metrics exposes the wizard's Prometheus metrics on a registry of its
// own.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"orderwizard/internal/core/domain/model/draft"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

const DefaultNamespace = "orderwizard"

// Metrics records wizard progress, outbound calls, breaker states and HTTP
// traffic.
type Metrics struct {
	registry *prometheus.Registry

	SectionsSubmitted *prometheus.CounterVec
	OrdersPlaced      prometheus.Counter

	ServiceCalls        *prometheus.CounterVec
	ServiceCallDuration *prometheus.HistogramVec
	CircuitBreakerState *prometheus.GaugeVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.SectionsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sections_submitted_total",
			Help:      "Section submissions by section and result",
		},
		[]string{"section", "result"},
	)

	m.OrdersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders accepted by the order service",
		},
	)

	m.ServiceCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_calls_total",
			Help:      "Calls to external services by outcome",
		},
		[]string{"service", "outcome"},
	)

	m.ServiceCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "service_call_duration_seconds",
			Help:      "External service call duration in seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		},
		[]string{"service"},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"service"},
	)

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(
		m.SectionsSubmitted,
		m.OrdersPlaced,
		m.ServiceCalls,
		m.ServiceCallDuration,
		m.CircuitBreakerState,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// SectionSubmitted counts a section submission.
func (m *Metrics) SectionSubmitted(section draft.Section, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	m.SectionsSubmitted.WithLabelValues(section.String(), result).Inc()
}

func (m *Metrics) OrderPlaced() {
	m.OrdersPlaced.Inc()
}

// ObserveCall records one call to an external service.
func (m *Metrics) ObserveCall(service, outcome string, elapsed time.Duration) {
	m.ServiceCalls.WithLabelValues(service, outcome).Inc()
	m.ServiceCallDuration.WithLabelValues(service).Observe(elapsed.Seconds())
}

func (m *Metrics) SetBreakerState(service string, state gobreaker.State) {
	var value float64
	switch state {
	case gobreaker.StateClosed:
		value = 0
	case gobreaker.StateHalfOpen:
		value = 1
	case gobreaker.StateOpen:
		value = 2
	}
	m.CircuitBreakerState.WithLabelValues(service).Set(value)
}

// RecordHTTPRequest records one served request. path is the route pattern,
// not the raw URL.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
