package redisapp

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client wraps go-redis. It backs the session revocation list, the only
// mutable state the service keeps outside Postgres.
type Client struct {
	*redis.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
