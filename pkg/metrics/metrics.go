package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service. Collectors are
// registered on the default registry once via New.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	externalRequestsTotal *prometheus.CounterVec

	submissionsTotal *prometheus.CounterVec
	activeSessions   prometheus.Gauge
}

// New creates and registers the collectors, labelled with the service name.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		externalRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "external_requests_total",
			Help:        "Total number of calls to external systems (calendar feed, scheduling API, submission sink).",
			ConstLabels: constLabels,
		}, []string{"target", "outcome"}),

		submissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Total number of booking submission attempts.",
			ConstLabels: constLabels,
		}, []string{"result"}),

		activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Number of live booking sessions.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest records one processed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncExternalRequest records one call to an external collaborator.
func (m *Metrics) IncExternalRequest(target, outcome string) {
	m.externalRequestsTotal.WithLabelValues(target, outcome).Inc()
}

// IncSubmission records one booking submission attempt with its result
// ("success", "failure" or "blocked").
func (m *Metrics) IncSubmission(result string) {
	m.submissionsTotal.WithLabelValues(result).Inc()
}

// SetActiveSessions reports the current number of live sessions.
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
