// Package metrics exposes the engine's Prometheus metrics, grounded on
// the teacher's src/metrics/prometheus.go promauto usage — trimmed down
// from that file's HTTP/system metric sprawl to the counters and gauges
// a single ledger run actually produces.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransactionsApplied counts transactions successfully applied, by kind.
	TransactionsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_applied_total",
			Help: "Total number of transactions successfully applied, by kind",
		},
		[]string{"kind"},
	)

	// TransactionsRejected counts transactions rejected by the core, by
	// kind and error code.
	TransactionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_rejected_total",
			Help: "Total number of transactions rejected, by kind and error code",
		},
		[]string{"kind", "code"},
	)

	// DecodeErrors counts CSV rows that failed to decode into a transaction.
	DecodeErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_decode_errors_total",
			Help: "Total number of CSV rows that failed to decode",
		},
	)

	// AccountsLocked counts accounts that transitioned into the locked state.
	AccountsLocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_accounts_locked_total",
			Help: "Total number of accounts locked by a chargeback",
		},
	)

	// AccountsOpen reports how many distinct accounts the current run has
	// touched.
	AccountsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_accounts_open",
			Help: "Number of distinct accounts touched by the current run",
		},
	)
)
