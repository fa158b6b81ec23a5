package game

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsSubsystem = "game"

// Result label values.
const (
	resultSuccess = "success"
	resultError   = "error"
)

// Metrics holds the Prometheus collectors updated by Solve.
type Metrics struct {
	// SolvesTotal counts solves.
	// Labels: condition (safety, reachability, ...), result (success, error)
	SolvesTotal *prometheus.CounterVec

	// SolveDurationSeconds measures the time spent computing winning regions.
	// Labels: condition
	SolveDurationSeconds *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors. Registering twice with the same
// registry panics, so create one Metrics per registry and share it.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SolvesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "solves_total",
				Help:      "Total number of winning-region computations by condition and result",
			},
			[]string{"condition", "result"},
		),
		SolveDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "solve_duration_seconds",
				Help:      "Winning-region computation duration in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"condition"},
		),
	}
}

// observe is a no-op on a nil receiver.
func (m *Metrics) observe(kind, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SolvesTotal.WithLabelValues(kind, result).Inc()
	m.SolveDurationSeconds.WithLabelValues(kind).Observe(elapsed.Seconds())
}
