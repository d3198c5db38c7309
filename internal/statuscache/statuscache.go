// Package statuscache caches serialized inventory-status responses in
// Redis. The cache is best-effort: a miss or a Redis error just falls
// through to the store.
package statuscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "inventory:status:"

// StatusCache holds per-product status payloads with a TTL. Mutating
// operations invalidate the product's entry.
type StatusCache struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

// New creates a StatusCache over an established Redis client.
func New(rdb *redis.Client, ctx context.Context, ttl time.Duration) *StatusCache {
	return &StatusCache{rdb: rdb, ctx: ctx, ttl: ttl}
}

// Get returns the cached payload for a product, or false on a miss.
func (c *StatusCache) Get(productID string) ([]byte, bool) {
	data, err := c.rdb.Get(c.ctx, keyPrefix+productID).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the payload for a product.
func (c *StatusCache) Set(productID string, payload []byte) {
	c.rdb.Set(c.ctx, keyPrefix+productID, payload, c.ttl)
}

// Invalidate drops the cached entry for a product.
func (c *StatusCache) Invalidate(productID string) {
	c.rdb.Del(c.ctx, keyPrefix+productID)
}
