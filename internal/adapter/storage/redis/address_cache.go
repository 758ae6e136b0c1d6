package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// AddressCache implements ports.AddressCache using Redis. It is strictly a
// fast path: a miss or a Redis outage falls through to PostgreSQL, which
// remains the source of truth for allocated addresses.
type AddressCache struct {
	client *goredis.Client
	prefix string
}

// NewAddressCache creates a new Redis-backed deposit-address cache.
func NewAddressCache(client *goredis.Client) *AddressCache {
	return &AddressCache{
		client: client,
		prefix: "depositaddr:",
	}
}

// Get retrieves a cached allocation by owner/network key.
// Returns nil, nil if the key does not exist.
func (c *AddressCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis address get: %w", err)
	}
	return val, nil
}

// Set stores an allocation result with TTL.
func (c *AddressCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis address set: %w", err)
	}
	return nil
}
