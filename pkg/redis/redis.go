package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the connection settings for a Redis client.
type Config struct {
	// URL is a redis:// or rediss:// connection URL.
	URL      string
	Password string
	PoolSize int
	Timeout  time.Duration
}

// Client embeds the go-redis client.
type Client struct {
	*redis.Client
}

// NewClient creates a Redis client from cfg. It does not dial; use Ping to check connectivity.
func NewClient(cfg Config) (*Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.Timeout > 0 {
		opts.DialTimeout = cfg.Timeout
		opts.ReadTimeout = cfg.Timeout
		opts.WriteTimeout = cfg.Timeout
	}
	return &Client{Client: redis.NewClient(opts)}, nil
}

// Ping checks the connection with a bounded timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.Client.Ping(ctx).Err()
}
