// Package metrics provides Prometheus metrics collection for the check-in service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SearchesTotal tracks worker lookups by outcome (success, cached, error).
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_searches_total",
			Help: "Total number of worker search queries",
		},
		[]string{"status"},
	)

	// SearchDuration tracks end-to-end worker lookup duration.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "worker_search_duration_seconds",
			Help:    "Worker search duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// CheckInsTotal tracks check-in creations by outcome.
	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkins_total",
			Help: "Total number of check-in attempts",
		},
		[]string{"status"},
	)

	// CacheOperationsTotal tracks search cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_cache_operations_total",
			Help: "Total number of search cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current search cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_cache_size",
			Help: "Current search cache size",
		},
	)

	// CacheCapacity tracks search cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_cache_capacity",
			Help: "Search cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSearch records metrics for one worker lookup.
func RecordSearch(duration time.Duration, status string) {
	SearchDuration.Observe(duration.Seconds())
	SearchesTotal.WithLabelValues(status).Inc()
}

// RecordCheckIn records metrics for a check-in attempt.
func RecordCheckIn(status string) {
	CheckInsTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a search cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity gauges.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
