package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	NewsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_submitted_total",
			Help: "Total number of news items persisted",
		},
	)

	NotificationsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_emitted_total",
			Help: "Total number of notification records produced by fan-out",
		},
	)

	RelayDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_deliveries_total",
			Help: "Total number of relay delivery attempts",
		},
		[]string{"kind", "status"},
	)

	ClassifierRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_requests_total",
			Help: "Total number of classifier calls",
		},
		[]string{"operation", "status"},
	)

	RawItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raw_items_consumed_total",
			Help: "Total number of raw news items consumed from the queue",
		},
		[]string{"status"},
	)
)
