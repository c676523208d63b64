package admin

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "aopps_admin"

// Metrics holds the console's Prometheus collectors. A nil *Metrics is a
// valid no-op.
type Metrics struct {
	registry        *prometheus.Registry
	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	mutations       *prometheus.CounterVec
}

// NewMetrics registers the console collectors, plus the Go runtime and
// process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		backendRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "backend_requests_total",
			Help:      "Flight API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		backendLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Flight API call latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "mutations_total",
			Help:      "Console mutations by action and result.",
		}, []string{"action", "result"}),
	}
}

// ObserveCall implements flightapi.Observer.
func (m *Metrics) ObserveCall(endpoint string, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(endpoint, outcome).Inc()
	m.backendLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveMutation counts one mutation attempt.
func (m *Metrics) ObserveMutation(action string, result string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(action, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
