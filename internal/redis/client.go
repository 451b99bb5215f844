// Package redis builds the go-redis client shared by the monster and roll
// session stores.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

const defaultDialTimeout = 5 * time.Second

// Client is what the stores depend on: a single node, a cluster or miniredis
type Client interface {
	redis.UniversalClient
}

// Config describes the Redis deployment
type Config struct {
	Addrs       []string
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	TLS         bool
}

// Validate ensures at least one non-blank address is given
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Addrs) == 0 {
		vb.RequiredField("addrs")
	}
	for i, addr := range c.Addrs {
		errors.ValidateRequired(fmt.Sprintf("addrs[%d]", i), addr, vb)
	}
	if c.PoolSize < 0 {
		vb.Field("pool_size", "must not be negative")
	}

	return vb.Build()
}

// New builds a client without dialing. One address yields a single-node
// client; several yield a cluster client.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("redis config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis config")
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = defaultDialTimeout
	}

	opts := &redis.UniversalOptions{
		Addrs:       cfg.Addrs,
		PoolSize:    cfg.PoolSize,
		MaxRetries:  cfg.MaxRetries,
		DialTimeout: dialTimeout,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewUniversalClient(opts), nil
}

// Connect builds a client and pings it. An unreachable server is Unavailable.
func Connect(ctx context.Context, cfg *Config) (Client, error) {
	client, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() // nolint:errcheck // the ping error is the one worth reporting
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unreachable").
			WithMeta("addrs", cfg.Addrs)
	}

	return client, nil
}
