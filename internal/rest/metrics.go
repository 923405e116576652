package rest

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the requests sent to the cluster REST API.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cacheconsole_rest_requests_total",
				Help: "Total number of cluster REST requests by operation and status code",
			},
			[]string{"operation", "code"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cacheconsole_rest_request_duration_seconds",
				Help:    "Cluster REST request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Requests, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
