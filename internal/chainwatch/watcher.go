package chainwatch

import (
	"context"

	"github.com/btcsuite/btcd/wire"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/chainpub/internal/chainevent"
	"github.com/gabapcia/chainpub/internal/network"
	"github.com/gabapcia/chainpub/internal/pkg/logger"
	"github.com/gabapcia/chainpub/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainpub/internal/pkg/types"
)

// heightFromTip marks a watcher that starts at the current tip.
const heightFromTip = -1

var tracer = otel.Tracer("github.com/gabapcia/chainpub/internal/chainwatch")

// watcher polls a single network. It is only used by its own goroutine.
type watcher struct {
	network    network.Network
	client     Blockchain
	sink       EventSink
	checkpoint CheckpointStorage
	retry      retry.Retry
	mempool    bool

	next int64             // next height to raise, or heightFromTip
	seen types.Set[string] // previous mempool snapshot, nil before the first one
}

// poll raises the blocks mined since the last poll, then the new mempool
// transactions.
func (w *watcher) poll(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "chainwatch.Poll", trace.WithAttributes(
		attribute.String("network", w.network.Code),
	))
	defer span.End()

	if err := w.pollBlocks(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if w.mempool {
		w.pollMempool(ctx)
	}
}

// pollBlocks raises every block from w.next up to the tip. On failure the
// height is kept and retried on the next poll.
func (w *watcher) pollBlocks(ctx context.Context) error {
	var tip int64
	err := w.retry.Execute(ctx, func() (err error) {
		tip, err = w.client.LatestHeight(ctx)
		return err
	})
	if err != nil {
		pollErrors.WithLabelValues(w.network.Code, "latest_height").Inc()
		logger.Error(ctx, "failed to fetch chain tip",
			"block.network", w.network.Code,
			"error", err,
		)
		return err
	}

	chainLatestBlock.WithLabelValues(w.network.Code).Set(float64(tip))

	if w.next == heightFromTip {
		w.next = tip
	}

	for ; w.next <= tip; w.next++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := w.raiseBlock(ctx, w.next); err != nil {
			return err
		}
	}

	return nil
}

// raiseBlock fetches the block at height, raises it and saves the checkpoint.
func (w *watcher) raiseBlock(ctx context.Context, height int64) error {
	var block *wire.MsgBlock
	err := w.retry.Execute(ctx, func() (err error) {
		block, err = w.client.FetchBlockByHeight(ctx, height)
		return err
	})
	if err != nil {
		pollErrors.WithLabelValues(w.network.Code, "fetch_block").Inc()
		logger.Error(ctx, "failed to fetch block",
			"block.network", w.network.Code,
			"block.height", height,
			"error", err,
		)
		return err
	}

	if err := w.sink.PublishBlock(ctx, chainevent.NewBlockEvent(w.network, block, height)); err != nil {
		logger.Error(ctx, "failed to raise block event",
			"block.network", w.network.Code,
			"block.height", height,
			"error", err,
		)
		return err
	}

	blocksObserved.WithLabelValues(w.network.Code).Inc()
	watcherLatestBlock.WithLabelValues(w.network.Code).Set(float64(height))

	if err := w.checkpoint.SaveCheckpoint(ctx, w.network.Code, height); err != nil {
		logger.Error(ctx, "failed to save checkpoint",
			"block.network", w.network.Code,
			"block.height", height,
			"error", err,
		)
	}

	return nil
}

// pollMempool raises the transactions that were not in the previous snapshot.
// The first snapshot only establishes the baseline. Transactions that can no
// longer be fetched (mined or evicted in between) are skipped.
func (w *watcher) pollMempool(ctx context.Context) {
	txids, err := w.client.FetchMempool(ctx)
	if err != nil {
		pollErrors.WithLabelValues(w.network.Code, "fetch_mempool").Inc()
		logger.Error(ctx, "failed to fetch mempool",
			"transaction.network", w.network.Code,
			"error", err,
		)
		return
	}

	snapshot := types.NewSet(txids...)
	if w.seen == nil {
		w.seen = snapshot
		return
	}

	fresh := w.seen.Difference(txids)
	w.seen = snapshot

	for _, txid := range fresh {
		if ctx.Err() != nil {
			return
		}

		tx, err := w.client.FetchTransaction(ctx, txid)
		if err != nil {
			pollErrors.WithLabelValues(w.network.Code, "fetch_transaction").Inc()
			logger.Debug(ctx, "skipping mempool transaction",
				"transaction.network", w.network.Code,
				"transaction.hash", txid,
				"error", err,
			)
			continue
		}

		if err := w.sink.PublishTransaction(ctx, chainevent.NewTransactionEvent(w.network, tx)); err != nil {
			logger.Error(ctx, "failed to raise transaction event",
				"transaction.network", w.network.Code,
				"transaction.hash", txid,
				"error", err,
			)
			return
		}

		transactionsObserved.WithLabelValues(w.network.Code).Inc()
	}
}
