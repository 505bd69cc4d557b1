package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the front-end's Prometheus collectors.
type Metrics struct {
	Requests   *prometheus.CounterVec
	Generation *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mdlib_requests_total",
			Help: "Total number of record requests by standard and status code",
		}, []string{"standard", "code"}),
		Generation: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mdlib_generation_duration_seconds",
			Help:    "Time taken to generate a record",
			Buckets: prometheus.DefBuckets,
		}, []string{"standard"}),
	}
}
