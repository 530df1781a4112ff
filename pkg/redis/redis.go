package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	redisclient "github.com/redis/go-redis/v9"
)

// Client wraps redis.Client with connection helpers.
type Client struct {
	*redisclient.Client
	config Config
}

// NewClient creates a new Redis client with the given configuration and
// verifies connectivity before returning.
func NewClient(cfg Config) (*Client, error) {
	opts := &redisclient.Options{
		Addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	client := redisclient.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{
		Client: client,
		config: cfg,
	}, nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.Client.Close()
}

// Ping checks if the connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// GetClient returns the underlying go-redis client.
func (c *Client) GetClient() *redisclient.Client {
	return c.Client
}
