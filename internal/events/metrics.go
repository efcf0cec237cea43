package events

import "github.com/prometheus/client_golang/prometheus"

var (
	eventsPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_producer",
			Name:      "events_published_total",
			Help:      "Total number of published order events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_producer",
			Name:      "events_failed_total",
			Help:      "Total number of order events that could not be written",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(eventsPublished, eventsFailed)
}
