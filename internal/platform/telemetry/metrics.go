// Package telemetry registers the service's Prometheus metrics against the
// default registry, exposed on GET /metrics in the text exposition format.
//
// HTTP metrics are labelled by route pattern (e.g. /v1/observations/{id}),
// never the raw URL, to keep label cardinality bounded.
package telemetry

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route pattern.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)
)

var (
	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total number of organizations provisioned.",
		},
	)

	ObservationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observations_created_total",
			Help: "Total number of observations logged, by severity.",
		},
		[]string{"severity"},
	)

	ObservationTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observation_transitions_total",
			Help: "Total number of observation workflow transitions, by resulting status.",
		},
		[]string{"status"},
	)

	InvitesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "invites_sent_total",
			Help: "Total number of invites minted.",
		},
	)

	CapacityRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capacity_rejections_total",
			Help: "Total number of requests refused by a plan ceiling, by resource.",
		},
		[]string{"resource"},
	)
)

// DBOpenConnections tracks the sql.DB pool, sampled every 30 seconds by
// StartDBStatsCollector rather than per-request.
var DBOpenConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "db_open_connections",
		Help: "Current number of open database connections in the pool.",
	},
)

// StartDBStatsCollector launches a goroutine that samples connection pool
// statistics every 30 seconds. It exits when the database becomes
// unreachable, which happens naturally at shutdown once db.Close() runs.
func StartDBStatsCollector(db *sql.DB) {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			if err := db.Ping(); err != nil {
				slog.Warn("db stats collector: database unreachable, stopping collector", "error", err)
				return
			}
			DBOpenConnections.Set(float64(db.Stats().OpenConnections))
		}
	}()
}
