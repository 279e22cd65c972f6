package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	emittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hestia",
		Subsystem: "events",
		Name:      "emitted_total",
		Help:      "Total number of tenant lifecycle events emitted",
	}, []string{"event_type"})

	deliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hestia",
		Subsystem: "events",
		Name:      "delivered_total",
		Help:      "Total number of events delivered to publishers",
	}, []string{"publisher"})

	deliveryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hestia",
		Subsystem: "events",
		Name:      "delivery_errors_total",
		Help:      "Total number of event delivery errors",
	}, []string{"publisher"})

	deliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hestia",
		Subsystem: "events",
		Name:      "delivery_duration_seconds",
		Help:      "Time spent delivering events to publishers",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"publisher"})
)
