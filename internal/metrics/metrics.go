package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestSeconds     *prometheus.HistogramVec
	SchoolsRegistered  prometheus.Counter
	ValidationFailures prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "compass_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"handler", "status"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "compass_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		SchoolsRegistered: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "compass_schools_registered_total",
			Help: "Total number of schools successfully registered.",
		}),
		ValidationFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "compass_validation_failures_total",
			Help: "Total number of requests rejected by input validation.",
		}),
	}
}
