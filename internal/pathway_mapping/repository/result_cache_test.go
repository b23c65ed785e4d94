package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T, ttl time.Duration) (*ResultCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewResultCache(client, ttl), mr
}

func TestKey(t *testing.T) {
	k := Key("SIF", []byte("<rdf/>"), "name", "in-complex-with")
	assert.True(t, strings.HasPrefix(k, "biopax:result:sif:"))
	assert.Len(t, strings.TrimPrefix(k, "biopax:result:sif:"), 64)

	assert.Equal(t, k, Key("sif", []byte("<rdf/>"), "name", "in-complex-with"))
	assert.NotEqual(t, k, Key("sif", []byte("<rdf/>"), "name"))
	assert.NotEqual(t, Key("sif", []byte("a"), "bc"), Key("sif", []byte("ab"), "c"))
}

func TestResultCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupCache(t, 10*time.Minute)
	key := Key("default", []byte("model"))

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, key, []byte(`{"run_id":"r1"}`)))
	got, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"run_id":"r1"}`, string(got))
	assert.Equal(t, 10*time.Minute, mr.TTL(key))

	mr.FastForward(11 * time.Minute)
	_, ok, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResultCache_Disabled(t *testing.T) {
	ctx := context.Background()
	for _, cache := range []*ResultCache{nil, NewResultCache(nil, time.Minute)} {
		assert.False(t, cache.Enabled())
		require.NoError(t, cache.Set(ctx, "k", []byte("v")))
		_, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestResultCache_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	cache := NewResultCache(client, time.Minute)
	mr.Close()

	_, _, err = cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "k", []byte("v")))
}
