// Package bitcoind implements chainwatch.Blockchain on top of the JSON-RPC
// interface exposed by bitcoind and its forks (litecoind included).
package bitcoind

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/gabapcia/chainpub/internal/chainwatch"
	"github.com/gabapcia/chainpub/internal/pkg/transport/jsonrpc"
)

// client talks to a single node through a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var _ chainwatch.Blockchain = (*client)(nil)

// NewClient creates a node client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

func fetchInto[T any](ctx context.Context, conn jsonrpc.Client, method string, params ...any) (T, error) {
	var out T

	data, err := conn.Fetch(ctx, method, params...)
	if err != nil {
		return out, fmt.Errorf("%s: %w", method, err)
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%s: decode result: %w", method, err)
	}

	return out, nil
}

func decodeHex(s string) (*bytes.Reader, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(raw), nil
}

// LatestHeight returns the number of blocks in the longest chain.
func (c *client) LatestHeight(ctx context.Context) (int64, error) {
	return fetchInto[int64](ctx, c.conn, "getblockcount")
}

// FetchBlockByHeight resolves the hash at height and downloads the serialized block.
func (c *client) FetchBlockByHeight(ctx context.Context, height int64) (*wire.MsgBlock, error) {
	hash, err := fetchInto[string](ctx, c.conn, "getblockhash", height)
	if err != nil {
		return nil, err
	}

	// verbosity 0 returns the raw block as hex
	raw, err := fetchInto[string](ctx, c.conn, "getblock", hash, 0)
	if err != nil {
		return nil, err
	}

	r, err := decodeHex(raw)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", hash, err)
	}

	var block wire.MsgBlock
	if err := block.Deserialize(r); err != nil {
		return nil, fmt.Errorf("block %s: %w", hash, err)
	}

	return &block, nil
}

// FetchMempool returns the transaction IDs currently in the node's mempool.
func (c *client) FetchMempool(ctx context.Context) ([]string, error) {
	return fetchInto[[]string](ctx, c.conn, "getrawmempool")
}

// FetchTransaction downloads the serialized transaction identified by txid.
func (c *client) FetchTransaction(ctx context.Context, txid string) (*wire.MsgTx, error) {
	raw, err := fetchInto[string](ctx, c.conn, "getrawtransaction", txid, false)
	if err != nil {
		return nil, err
	}

	r, err := decodeHex(raw)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", txid, err)
	}

	var tx wire.MsgTx
	if err := tx.Deserialize(r); err != nil {
		return nil, fmt.Errorf("transaction %s: %w", txid, err)
	}

	return &tx, nil
}
