package provisioner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	provisionedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hestia",
		Subsystem: "provisioner",
		Name:      "buckets_provisioned_total",
		Help:      "Total number of tenant buckets fully provisioned",
	})

	deprovisionedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hestia",
		Subsystem: "provisioner",
		Name:      "buckets_deprovisioned_total",
		Help:      "Total number of tenant buckets deleted",
	})

	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hestia",
		Subsystem: "provisioner",
		Name:      "failures_total",
		Help:      "Total number of failed provisioning steps",
	}, []string{"op"})
)
