package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voicebridge_transactions_submitted_total",
			Help: "Total number of transactions submitted to the chain",
		}, []string{"type"})
	transactionsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voicebridge_transactions_confirmed_total",
			Help: "Total number of transactions confirmed on chain",
		})
	transactionsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voicebridge_transactions_failed_total",
			Help: "Total number of transactions that failed or reverted",
		})
	pollErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voicebridge_poll_errors_total",
			Help: "Total number of confirmation poll cycles that errored",
		})
	balanceReconciliations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voicebridge_balance_reconciliations_total",
			Help: "Total number of completed balance reconciliations",
		})
)
