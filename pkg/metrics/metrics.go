package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics Prometheus collectors of the service.
// All methods are safe to call on a nil *Metrics (metrics disabled).
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsCreated     prometheus.Counter
	flowTransitions     *prometheus.CounterVec
	insightCalls        *prometheus.CounterVec
}

// New registers collectors in the default Prometheus registry (served by promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry registers collectors in the given registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Appointments created through the booking flow",
			ConstLabels: constLabels,
		}),
		flowTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_flow_transitions_total",
			Help:        "Booking flow events by source state and outcome",
			ConstLabels: constLabels,
		}, []string{"from", "event", "outcome"}),
		insightCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "insight_calls_total",
			Help:        "Text generation calls by operation and outcome",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) ObserveFlowTransition(from, event, outcome string) {
	if m == nil {
		return
	}
	m.flowTransitions.WithLabelValues(from, event, outcome).Inc()
}

func (m *Metrics) ObserveInsight(operation, outcome string) {
	if m == nil {
		return
	}
	m.insightCalls.WithLabelValues(operation, outcome).Inc()
}
