package publisher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/chainpub/internal/network"
)

// transferIDVersion prefixes every transfer ID. Consumers key on the full
// string, so changing the layout requires a new version.
const transferIDVersion = "v3"

// ErrInvalidTransferID is returned by ParseTransferID for malformed input.
var ErrInvalidTransferID = errors.New("invalid transfer id")

// TransferID identifies one output of one transaction on one network. Its
// string form is stable across republication and lets consumers deduplicate.
type TransferID struct {
	Network string // Wire name of the network (e.g., "NETWORK_BTC")
	Hash    string // Transaction hash
	Index   uint32 // Output index
}

// NewTransferID builds the transfer ID of output index of transaction hash.
func NewTransferID(n network.Network, hash string, index uint32) TransferID {
	return TransferID{
		Network: n.WireName(),
		Hash:    hash,
		Index:   index,
	}
}

// String returns "v3.<network>.<hash>.<index>".
func (id TransferID) String() string {
	return transferIDVersion + "." + id.Network + "." + id.Hash + "." + strconv.FormatUint(uint64(id.Index), 10)
}

// ParseTransferID parses the output of TransferID.String.
func ParseTransferID(s string) (TransferID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return TransferID{}, fmt.Errorf("%w: %q has %d segments", ErrInvalidTransferID, s, len(parts))
	}

	if parts[0] != transferIDVersion {
		return TransferID{}, fmt.Errorf("%w: unsupported version %q", ErrInvalidTransferID, parts[0])
	}

	if parts[1] == "" || parts[2] == "" {
		return TransferID{}, fmt.Errorf("%w: %q has empty segments", ErrInvalidTransferID, s)
	}

	index, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return TransferID{}, fmt.Errorf("%w: output index %q: %w", ErrInvalidTransferID, parts[3], err)
	}

	return TransferID{
		Network: parts[1],
		Hash:    parts[2],
		Index:   uint32(index),
	}, nil
}
