package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contacts"

// HTTP metrics, labelled by route template rather than raw path to keep
// cardinality bounded.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// HTTPFailuresTotal counts responses produced by the failure chain, by
	// failure class (validation, http, unhandled).
	HTTPFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "failures_total",
			Help:      "Total failures rendered by the global failure handlers",
		},
		[]string{"class", "status"},
	)
)

// Database connection pool metrics
var (
	DBOpenConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Number of open connections in the DB pool",
		},
		[]string{"db"},
	)

	DBIdleConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_idle_connections",
			Help:      "Number of idle connections in the DB pool",
		},
		[]string{"db"},
	)

	DBInUseConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Number of in-use connections in the DB pool",
		},
		[]string{"db"},
	)
)

// ObserveDBStats publishes pool statistics for the named database.
func ObserveDBStats(db string, stats sql.DBStats) {
	DBOpenConns.WithLabelValues(db).Set(float64(stats.OpenConnections))
	DBIdleConns.WithLabelValues(db).Set(float64(stats.Idle))
	DBInUseConns.WithLabelValues(db).Set(float64(stats.InUse))
}
