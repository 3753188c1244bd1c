// Package chainevent defines the blockchain events raised by the indexing side
// of the relay and the subscription contract used to receive them.
//
// Event is a closed set: only BlockEvent and TransactionEvent implement it.
package chainevent

import (
	"github.com/btcsuite/btcd/wire"

	"github.com/gabapcia/chainpub/internal/network"
)

// HeightUnknown marks a BlockEvent whose chain position was not reported by
// the producer.
const HeightUnknown int64 = -1

// Kind identifies the variant of an Event.
type Kind int

const (
	KindBlock Kind = iota + 1
	KindTransaction
)

// String returns the lowercase name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

// Event is a block or transaction observation on one network.
type Event interface {
	Kind() Kind
	NetworkCode() string

	sealed()
}

// BlockEvent reports a new block. Height is the chain position of the block,
// or HeightUnknown.
type BlockEvent struct {
	Network network.Network
	Block   *wire.MsgBlock
	Height  int64
}

// NewBlockEvent creates a BlockEvent for a block at a known chain position.
func NewBlockEvent(n network.Network, block *wire.MsgBlock, height int64) BlockEvent {
	return BlockEvent{
		Network: n,
		Block:   block,
		Height:  height,
	}
}

// NewRawBlockEvent creates a BlockEvent for a block whose height is unknown.
func NewRawBlockEvent(n network.Network, block *wire.MsgBlock) BlockEvent {
	return NewBlockEvent(n, block, HeightUnknown)
}

func (BlockEvent) Kind() Kind { return KindBlock }

func (e BlockEvent) NetworkCode() string { return e.Network.Code }

func (BlockEvent) sealed() {}

// TransactionEvent reports a transaction seen outside of a block, such as a
// mempool arrival.
type TransactionEvent struct {
	Network     network.Network
	Transaction *wire.MsgTx
}

// NewTransactionEvent creates a TransactionEvent.
func NewTransactionEvent(n network.Network, tx *wire.MsgTx) TransactionEvent {
	return TransactionEvent{
		Network:     n,
		Transaction: tx,
	}
}

func (TransactionEvent) Kind() Kind { return KindTransaction }

func (e TransactionEvent) NetworkCode() string { return e.Network.Code }

func (TransactionEvent) sealed() {}

var (
	_ Event = BlockEvent{}
	_ Event = TransactionEvent{}
)
