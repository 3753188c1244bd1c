package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/chainpub/internal/chainwatch"

	"github.com/redis/go-redis/v9"
)

const checkpointKeyPrefix = "chainwatch"

// checkpointKey returns "chainwatch:checkpoint:<network>".
func checkpointKey(network string) string {
	return fmt.Sprintf("%s:checkpoint:%s", checkpointKeyPrefix, network)
}

// SaveCheckpoint stores height as the latest published block of network.
// The key never expires.
func (c *client) SaveCheckpoint(ctx context.Context, network string, height int64) error {
	return c.conn.Set(ctx, checkpointKey(network), strconv.FormatInt(height, 10), 0).Err()
}

// LoadLatestCheckpoint returns the height saved for network, or
// chainwatch.ErrNoCheckpointFound when the key does not exist.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (int64, error) {
	key := checkpointKey(network)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainwatch.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted checkpoint at %s: %w", key, err)
	}

	return height, nil
}

var _ chainwatch.CheckpointStorage = (*client)(nil)
