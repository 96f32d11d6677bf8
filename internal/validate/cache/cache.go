// Package cache holds check verdicts for their TTL so repeated checks of
// the same address skip store lookups and host verification.
package cache

import (
	"context"
	"time"

	"mailcheck/internal/validate/models"
)

// Cache is the verdict cache contract. Get returns sentinel.ErrNotFound on
// a miss; an expired entry is a miss.
type Cache interface {
	Get(ctx context.Context, key string) (*models.CheckResult, error)
	Set(ctx context.Context, key string, result *models.CheckResult, ttl time.Duration) error
}
