package checkout

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	attemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "attempts_total",
			Help:      "Total number of finished checkout attempts",
		},
		[]string{"method", "outcome"},
	)

	attemptDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "attempt_duration_seconds",
			Help:      "Histogram of checkout attempt durations in seconds, including time spent in the payment widget",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"method"},
	)

	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "backend",
			Name:      "step_duration_seconds",
			Help:      "Histogram of backend call durations per checkout step",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"step"},
	)

	attemptsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "attempts_in_progress",
			Help:      "Number of checkout attempts currently running",
		},
	)
)

func observeStep(step string, start time.Time) {
	stepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}

func RegisterMetrics() {
	prometheus.MustRegister(
		attemptsTotal,
		attemptDuration,
		stepDuration,
		attemptsInProgress,
	)
}
