package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Domain metrics
	MenuViewsCounter        *prometheus.CounterVec
	RecordOperationsCounter *prometheus.CounterVec
)

// InitMetrics registers all metrics under the configured prefix.
func InitMetrics(prefix string) {
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	MenuViewsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_menu_views_total",
			Help: "Total number of public menu renders",
		},
		[]string{"slug"},
	)

	RecordOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_record_operations_total",
			Help: "Total number of tenant record operations",
		},
		[]string{"record_type", "operation"},
	)
}

// TrackDBOperation returns a function that records the duration of one
// database operation. No-op until InitMetrics has run.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

func RecordOperation(recordType, operation string) {
	if RecordOperationsCounter == nil {
		return
	}
	RecordOperationsCounter.WithLabelValues(recordType, operation).Inc()
}

func RecordMenuView(slug string) {
	if MenuViewsCounter == nil {
		return
	}
	MenuViewsCounter.WithLabelValues(slug).Inc()
}
