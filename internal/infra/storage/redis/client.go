// Package redis stores chainpub state in Redis.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and checks it answers a PING.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &client{
		conn: conn,
	}, nil
}
