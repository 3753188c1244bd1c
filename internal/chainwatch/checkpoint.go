package chainwatch

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no checkpoint
// has been saved yet for the requested network.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists the height of the latest block published for
// each network, so that polling resumes where it stopped.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the latest published block of network,
	// overwriting any previous checkpoint.
	SaveCheckpoint(ctx context.Context, network string, height int64) error

	// LoadLatestCheckpoint returns the latest height saved for network, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, network string) (int64, error)
}

// nopCheckpoint never remembers anything: every start begins at the tip.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(context.Context, string, int64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (int64, error) {
	return 0, ErrNoCheckpointFound
}
