package chainwatch

import (
	"context"

	"github.com/btcsuite/btcd/wire"
)

// Blockchain is a read-only view of a node of one network.
type Blockchain interface {
	// LatestHeight returns the height of the current chain tip.
	LatestHeight(ctx context.Context) (int64, error)

	// FetchBlockByHeight returns the block at height on the active chain.
	FetchBlockByHeight(ctx context.Context, height int64) (*wire.MsgBlock, error)

	// FetchMempool returns the IDs of the transactions waiting in the mempool.
	FetchMempool(ctx context.Context) ([]string, error)

	// FetchTransaction returns the transaction identified by txid.
	FetchTransaction(ctx context.Context, txid string) (*wire.MsgTx, error)
}
