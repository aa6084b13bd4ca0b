package httpserver

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentd/internal/config"
	"contentd/pkg/cache"
)

func TestSetupCache_Drivers(t *testing.T) {
	store, cleanup, err := SetupCache(config.Cache{Driver: "memory", TTL: "1m"})
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &cache.Memory{}, store)

	store, cleanup, err = SetupCache(config.Cache{Driver: ""})
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &cache.Memory{}, store)

	store, cleanup, err = SetupCache(config.Cache{Driver: "none"})
	require.NoError(t, err)
	defer cleanup()
	assert.Nil(t, store)
}

func TestSetupCache_MemoryBounded(t *testing.T) {
	store, cleanup, err := SetupCache(config.Cache{Driver: "memory", MaxEntries: 2})
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, store.Set(ctx, k, []byte(k), 0, "t"))
	}
	assert.Equal(t, 2, store.(*cache.Memory).Len())
}

func TestSetupCache_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	store, cleanup, err := SetupCache(config.Cache{Driver: "redis", Host: mr.Host(), Port: port, Prefix: "test", TTL: "30s"})
	require.NoError(t, err)
	defer cleanup()
	require.IsType(t, &cache.Redis{}, store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "/api/faq", []byte("{}"), 0, "faq"))
	assert.True(t, mr.Exists("test:tag:faq"))

	n, err := store.InvalidateTags(ctx, "faq")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSetupCache_RedisUnreachable(t *testing.T) {
	_, _, err := SetupCache(config.Cache{Driver: "redis", Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
}
