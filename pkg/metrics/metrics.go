package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Business metrics
	RideRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_requests_total",
			Help: "Total number of ride request lifecycle transitions",
		},
		[]string{"status"},
	)

	ActiveTripsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_trips_total",
			Help: "Current number of active trips",
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of notifications emitted",
		},
		[]string{"audience", "type"},
	)

	WebSocketConnectionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active driver WebSocket connections",
		},
	)

	// Store metrics
	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_writes_total",
			Help: "Total number of collection writes",
		},
		[]string{"collection", "status"},
	)

	StoreWriteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_write_duration_seconds",
			Help:    "Collection write duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection"},
	)

	BrokerMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broker_messages_published_total",
			Help: "Total number of lifecycle events published to the broker",
		},
		[]string{"routing_key", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordStoreWrite records collection write metrics
func RecordStoreWrite(collection string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StoreWritesTotal.WithLabelValues(collection, status).Inc()
	StoreWriteDuration.WithLabelValues(collection).Observe(duration.Seconds())
}

// RecordBrokerPublish records broker publish metrics
func RecordBrokerPublish(routingKey string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	BrokerMessagesPublished.WithLabelValues(routingKey, status).Inc()
}

// RecordRequestStatus counts a lifecycle transition by resulting status
func RecordRequestStatus(status string) {
	RideRequestsTotal.WithLabelValues(status).Inc()
}
