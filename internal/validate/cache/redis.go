package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mailcheck/internal/validate/models"
	"mailcheck/pkg/platform/sentinel"
)

const keyPrefix = "mailcheck:verdict:"

// RedisCache shares check verdicts across instances. Entries expire via
// Redis TTL; Redis outages surface as sentinel.ErrUnavailable so callers
// can treat them as misses.
type RedisCache struct {
	client redis.Cmdable
}

// NewRedis constructs a Redis-backed verdict cache.
func NewRedis(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.CheckResult, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("%w: redis get: %v", sentinel.ErrUnavailable, err)
	}

	var result models.CheckResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry is unrecoverable; treat it as a miss.
		return nil, sentinel.ErrNotFound
	}
	return &result, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, result *models.CheckResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal check result: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}
