package generate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "lvbound"

// Metrics holds the Prometheus collectors updated by Run. One Metrics may be
// shared by concurrent runs.
type Metrics struct {
	// Explored counts candidates handed to the oracle.
	Explored prometheus.Counter

	// Valid counts candidates the oracle accepted.
	Valid prometheus.Counter

	// OracleDuration measures one oracle evaluation.
	OracleDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Explored: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "candidates",
			Name:      "explored_total",
			Help:      "Candidates evaluated by the oracle",
		}),
		Valid: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "candidates",
			Name:      "valid_total",
			Help:      "Candidates accepted by the oracle",
		}),
		OracleDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "oracle",
			Name:      "duration_seconds",
			Help:      "Oracle evaluation latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12), // 100ns to ~0.4s
		}),
	}
}
