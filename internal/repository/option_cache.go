package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OptionCache is a thin JSON cache over Redis for reference-data option
// sets. Cache failures are deliberately indistinguishable from misses: the
// catalog database stays the source of truth and a degraded cache must
// never fail a read.
type OptionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOptionCache builds an option cache. A nil client disables caching.
func NewOptionCache(client *redis.Client, ttl time.Duration) *OptionCache {
	return &OptionCache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest, reporting whether a
// usable value was found.
func (c *OptionCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// Set stores value under key for the configured TTL.
func (c *OptionCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// OptionKey builds a cache key for an option set scoped by a parent id.
func OptionKey(kind, parentID string) string {
	return fmt.Sprintf("catalog:%s:%s", kind, parentID)
}
