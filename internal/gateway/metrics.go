package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_service",
		Subsystem: "stripe",
		Name:      "requests_total",
		Help:      "Total number of Stripe API calls by operation and outcome.",
	}, []string{"operation", "status"})

	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payment_service",
		Subsystem: "stripe",
		Name:      "request_duration_seconds",
		Help:      "Stripe API call latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)
