package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by ID",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by ID",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by ID",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
