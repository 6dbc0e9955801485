package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Minute

// ResponseCache stores rendered public-listing payloads with a short TTL.
// Keys carry the resource name and the full query shape, so every distinct
// page/search combination caches independently. There is no invalidation on
// admin mutations; the TTL bounds staleness instead.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key. Any backend failure is reported
// as a miss so the caller falls through to the store.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *ResponseCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
