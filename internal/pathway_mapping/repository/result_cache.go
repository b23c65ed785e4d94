package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const resultKeyPrefix = "biopax:result:" // biopax:result:{mode}:{sha256}

// ResultCache keeps serialized conversion results in Redis. A cache with
// a nil client is disabled: Get always misses and Set does nothing.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

func (c *ResultCache) Enabled() bool { return c != nil && c.client != nil }

// Key derives the cache key for one conversion. params are the options
// that change the output (network name, rule names).
func Key(mode string, input []byte, params ...string) string {
	h := sha256.New()
	h.Write(input)
	for _, p := range params {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return resultKeyPrefix + strings.ToLower(mode) + ":" + hex.EncodeToString(h.Sum(nil))
}

func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached result: %w", err)
	}
	return b, true, nil
}

func (c *ResultCache) Set(ctx context.Context, key string, value []byte) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}
	return nil
}
