package utils

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Domain metrics
	HabitOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "habit_operations_total",
			Help: "Total number of habit operations",
		},
		[]string{"operation"}, // create, update, toggle, delete
	)

	LogOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "habit_log_operations_total",
			Help: "Total number of habit log operations",
		},
		[]string{"operation"}, // create, update, delete
	)

	StatsComputationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stats_computation_duration_seconds",
			Help:    "Duration of statistics computations",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"kind"}, // overview, habit, daily, heatmap, trend
	)

	// Authentication metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"},
	)

	// Session metrics
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions_total",
			Help: "Total number of active sessions",
		},
	)

	// Cache metrics
	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache lookups by result",
		},
		[]string{"cache", "result"}, // hit / miss
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type and reason",
		},
		[]string{"type", "reason"},
	)
)

// TrackDBOperation times one database operation. Callers defer
// ObserveDuration on the returned timer.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

func TrackStatsComputation(kind string) *prometheus.Timer {
	return prometheus.NewTimer(StatsComputationDuration.WithLabelValues(kind))
}

func TrackHabitOperation(operation string) {
	HabitOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackLogOperation(operation string) {
	LogOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

func UpdateActiveSessions(count float64) {
	ActiveSessions.Set(count)
}

func TrackCacheOperation(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheOperations.WithLabelValues(cache, result).Inc()
}

func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}

// TrackHTTPRequest records a finished request in the counter vec.
func TrackHTTPRequest(method, path string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
