// Package metrics defines and registers the custom Prometheus metrics of the
// POS admin API. It is the single source of truth for metric names, labels,
// and help strings. All metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "posadmin"

// ── Authentication ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "unknown_user" or "bad_password"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by outcome.",
	},
	[]string{"result"},
)

// LegacyPasswordMigrationsTotal counts plaintext credentials upgraded to bcrypt.
var LegacyPasswordMigrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "legacy_password_migrations_total",
		Help:      "Total number of legacy plaintext passwords hashed on login.",
	},
)

// LoginThrottledTotal counts login requests rejected by the failure limiter.
var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of login requests rejected with 429.",
	},
)

// ── Exports ──────────────────────────────────────────────────────────────────

// ExportsTotal counts generated spreadsheet reports.
// Label:
//   - report: "transaction_details" or "sales_summary"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of spreadsheet exports generated, by report.",
	},
	[]string{"report"},
)

// ExportRows observes how many rows each export materialised in memory.
// Label:
//   - report: "transaction_details" or "sales_summary"
var ExportRows = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_rows",
		Help:      "Number of rows buffered per spreadsheet export.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 8), // 10 … 163840
	},
	[]string{"report"},
)

// ExportDuration measures query plus rendering time of an export.
// Label:
//   - report: "transaction_details" or "sales_summary"
var ExportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_duration_seconds",
		Help:      "Duration of spreadsheet export generation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"report"},
)
