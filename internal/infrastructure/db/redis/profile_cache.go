package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/identity-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// ProfileCache caches public user projections in Redis.
// Key format: profile:<user_id>. Entries expire after the configured TTL and
// are invalidated eagerly on every profile mutation. Only the public
// projection is serialized, so the credential digest never reaches Redis.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProfileCache{client: client, ttl: ttl}
}

// Get returns the cached projection, or (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, id string) (*domain.User, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Corrupt entry: treat as a miss, drop it.
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, nil
	}
	return &user, nil
}

func (c *ProfileCache) Set(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user.Public())
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), data, c.ttl).Err()
}

func (c *ProfileCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProfileCache) key(id string) string {
	return "profile:" + id
}
