// Package testutils holds statblock fixtures and test helpers shared across
// packages.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/statblock-importer/internal/redis"
)

// NewTestRedis starts a miniredis server and a client for it. Both are
// closed when the test ends.
func NewTestRedis(t testing.TB) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.New(&redis.Config{Addrs: []string{mr.Addr()}})
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
