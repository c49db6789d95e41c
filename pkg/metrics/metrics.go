package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service-wide prometheus collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	WebhookRequestsTotal   *prometheus.CounterVec
	WebhookRequestDuration *prometheus.HistogramVec

	ActiveSessions prometheus.Gauge
}

// New registers and returns the collectors for the given service.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of handled HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		WebhookRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "webhook_requests_total",
			Help:        "Number of outbound automation webhook calls.",
			ConstLabels: labels,
		}, []string{"target", "status"}),

		WebhookRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "webhook_request_duration_seconds",
			Help:        "Outbound automation webhook latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Number of live booking form sessions.",
			ConstLabels: labels,
		}),
	}
}
