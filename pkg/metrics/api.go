package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics records request-level and domain-level counters for the service.
type APIMetrics struct {
	requestDuration   *prometheus.HistogramVec
	ordersPlaced      prometheus.Counter
	assistantOutcomes *prometheus.CounterVec
}

// NewAPIMetrics registers the API metrics on the provided registerer.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	if reg == nil {
		return &APIMetrics{}
	}
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders placed through checkout.",
	})
	assistantOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_requests_total",
		Help: "Assistant round trips by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(requestDuration, ordersPlaced, assistantOutcomes)
	return &APIMetrics{
		requestDuration:   requestDuration,
		ordersPlaced:      ordersPlaced,
		assistantOutcomes: assistantOutcomes,
	}
}

// ObserveRequest records the duration of a completed HTTP request.
func (m *APIMetrics) ObserveRequest(method, status string, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}

// IncOrderPlaced increments the order counter.
func (m *APIMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

// IncAssistantOutcome counts one assistant round trip by outcome
// ("ok" or "fallback").
func (m *APIMetrics) IncAssistantOutcome(outcome string) {
	if m == nil || m.assistantOutcomes == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	m.assistantOutcomes.WithLabelValues(outcome).Inc()
}
