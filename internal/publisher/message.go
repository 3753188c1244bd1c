package publisher

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/gabapcia/chainpub/internal/chainevent"
	"github.com/gabapcia/chainpub/internal/network"
	"github.com/gabapcia/chainpub/internal/pkg/types"
)

var (
	// ErrMalformedEvent is returned when an event carries no block or transaction.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrInvalidOutputValue is returned for outputs whose value is negative or
	// above the maximum money supply.
	ErrInvalidOutputValue = errors.New("invalid output value")

	// ErrUnknownBlockHeight is returned when a block event carries no height
	// and none can be recovered from its coinbase.
	ErrUnknownBlockHeight = errors.New("unknown block height")
)

// ChainBlockMessage is the wire representation of a block.
type ChainBlockMessage struct {
	Network         string          `json:"network"`
	BlockHeight     uint64          `json:"block_height"`
	BlockHash       string          `json:"block_hash"`
	ParentBlockHash *string         `json:"parent_block_hash"` // nil for the genesis block
	BlockTime       types.EpochTime `json:"block_time"`
}

// ChainTransactionMessage is the wire representation of one transaction
// output. A transaction with N outputs is published as N messages.
type ChainTransactionMessage struct {
	Network         string          `json:"network"`
	BlockHeight     *uint64         `json:"block_height"` // nil outside of a block
	BlockHash       *string         `json:"block_hash"`   // nil outside of a block
	Hash            string          `json:"hash"`
	TransferID      string          `json:"transfer_id"`
	ContractAddress *string         `json:"contract_address"` // always nil for native outputs
	Symbol          string          `json:"symbol"`
	From            *string         `json:"from"` // inputs are not resolved
	To              *string         `json:"to"`   // nil when the script has no single destination
	Amount          types.Amount    `json:"amount"`
	TxnTime         types.EpochTime `json:"txn_time"`
	IsExternal      bool            `json:"is_external"`
}

// NewChainBlockMessage maps a block event to its wire message.
//
// The height reported by the producer is used when known. Otherwise the
// height committed in the coinbase input (BIP34) is used, and the event fails
// with ErrUnknownBlockHeight when that is not available either.
func NewChainBlockMessage(evt chainevent.BlockEvent) (ChainBlockMessage, error) {
	if evt.Block == nil {
		return ChainBlockMessage{}, fmt.Errorf("%w: block event without block", ErrMalformedEvent)
	}

	height, err := blockHeight(evt)
	if err != nil {
		return ChainBlockMessage{}, err
	}

	header := evt.Block.Header
	msg := ChainBlockMessage{
		Network:     evt.Network.WireName(),
		BlockHeight: height,
		BlockHash:   header.BlockHash().String(),
		BlockTime:   types.NewEpochTime(header.Timestamp),
	}

	if header.PrevBlock != (chainhash.Hash{}) {
		parent := header.PrevBlock.String()
		msg.ParentBlockHash = &parent
	}

	return msg, nil
}

// blockHeight resolves the chain position of the block in evt.
func blockHeight(evt chainevent.BlockEvent) (uint64, error) {
	if evt.Height >= 0 {
		return uint64(evt.Height), nil
	}

	if len(evt.Block.Transactions) == 0 || !blockchain.IsCoinBaseTx(evt.Block.Transactions[0]) {
		return 0, fmt.Errorf("%w: block %s has no coinbase", ErrUnknownBlockHeight, evt.Block.BlockHash())
	}

	height, err := blockchain.ExtractCoinbaseHeight(btcutil.NewTx(evt.Block.Transactions[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: block %s: %w", ErrUnknownBlockHeight, evt.Block.BlockHash(), err)
	}

	if height < 0 {
		return 0, fmt.Errorf("%w: block %s commits to height %d", ErrUnknownBlockHeight, evt.Block.BlockHash(), height)
	}

	return uint64(height), nil
}

// NewChainTransactionMessages maps every output of tx to a wire message, in
// output order.
//
// When block is not nil the messages carry its hash and height. now is the
// construction time stamped into txn_time.
func NewChainTransactionMessages(n network.Network, tx *wire.MsgTx, block *ChainBlockMessage, now time.Time) ([]ChainTransactionMessage, error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: transaction event without transaction", ErrMalformedEvent)
	}

	var (
		hash    = tx.TxHash().String()
		txnTime = types.NewEpochTime(now)
		msgs    = make([]ChainTransactionMessage, 0, len(tx.TxOut))
	)
	for i, out := range tx.TxOut {
		if out == nil {
			return nil, fmt.Errorf("%w: transaction %s output %d is missing", ErrMalformedEvent, hash, i)
		}

		if out.Value < 0 || out.Value > btcutil.MaxSatoshi {
			return nil, fmt.Errorf("%w: transaction %s output %d has value %d", ErrInvalidOutputValue, hash, i, out.Value)
		}

		msg := ChainTransactionMessage{
			Network:    n.WireName(),
			Hash:       hash,
			TransferID: NewTransferID(n, hash, uint32(i)).String(),
			Symbol:     n.Code,
			Amount:     types.NewAmount(n.ToDisplayUnit(out.Value)),
			TxnTime:    txnTime,
		}

		if addr, ok := n.DecodeAddress(out.PkScript); ok {
			msg.To = &addr
		}

		if block != nil {
			height, blockHash := block.BlockHeight, block.BlockHash
			msg.BlockHeight = &height
			msg.BlockHash = &blockHash
		}

		msgs = append(msgs, msg)
	}

	return msgs, nil
}
