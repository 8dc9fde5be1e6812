package handler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_processed_total",
			Help:      "Total number of successfully processed orders",
		},
	)

	ordersFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order processing attempts",
		},
	)

	ordersDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of orders written to DLQ",
		},
	)

	commitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "payment_service",
			Subsystem: "kafka_consumer",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of order processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "payment_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_in_progress",
			Help:      "Number of orders currently being processed",
		},
	)
)

var (
	checkoutRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment_service",
			Subsystem: "checkout",
			Name:      "requests_total",
			Help:      "Total number of checkout requests by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	checkoutRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payment_service",
			Subsystem: "checkout",
			Name:      "request_duration_seconds",
			Help:      "Histogram of checkout request durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

func checkoutSucceeded(kind string) {
	checkoutRequestsTotal.WithLabelValues(kind, "ok").Inc()
}

func checkoutFailed(kind string) {
	checkoutRequestsTotal.WithLabelValues(kind, "error").Inc()
}

func observe(kind string, start time.Time) {
	checkoutRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
