package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	EntriesUpserted  *prometheus.CounterVec
	EntriesDeleted   *prometheus.CounterVec
	FinalizeAttempts *prometheus.CounterVec
	GatingFailures   prometheus.Counter
	DaysFinalized    prometheus.Counter

	// Authentication metrics
	LoginAttempts *prometheus.CounterVec

	// Storage metrics
	StorageRecoveries prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesUpserted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gangacalc_entries_upserted_total",
				Help: "Total entry upserts by kind",
			},
			[]string{"kind"},
		),
		EntriesDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gangacalc_entries_deleted_total",
				Help: "Total entry deletions by kind",
			},
			[]string{"kind"},
		),
		FinalizeAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gangacalc_finalize_attempts_total",
				Help: "Finalize attempts by outcome",
			},
			[]string{"result"},
		),
		GatingFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gangacalc_gating_failures_total",
			Help: "Mutations rejected by day or opening-balance gating",
		}),
		DaysFinalized: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gangacalc_days_finalized_total",
			Help: "Total days successfully finalized",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gangacalc_login_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"result"},
		),
		StorageRecoveries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gangacalc_storage_recoveries_total",
			Help: "Corrupt persisted payloads archived and reset",
		}),
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gangacalc_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gangacalc_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
