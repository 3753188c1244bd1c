package chainwatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// chainLatestBlock tracks the tip height reported by the node.
	chainLatestBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chainpub_chain_latest_block",
			Help: "Latest block height reported by the node",
		},
		[]string{"network"},
	)

	// watcherLatestBlock tracks the height of the latest block raised as an event.
	watcherLatestBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chainpub_watcher_latest_block",
			Help: "Latest block height raised by the watcher",
		},
		[]string{"network"},
	)

	// blocksObserved counts blocks raised as events.
	blocksObserved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_blocks_observed_total",
			Help: "Total number of blocks raised by the watcher",
		},
		[]string{"network"},
	)

	// transactionsObserved counts mempool transactions raised as events.
	transactionsObserved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_mempool_transactions_observed_total",
			Help: "Total number of mempool transactions raised by the watcher",
		},
		[]string{"network"},
	)

	// pollErrors counts failed node calls.
	pollErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chainpub_watcher_errors_total",
			Help: "Total number of failed node calls",
		},
		[]string{"network", "operation"},
	)
)
