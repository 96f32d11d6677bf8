package cache

import (
	"context"
	"sync"
	"time"

	"mailcheck/internal/validate/models"
	"mailcheck/pkg/platform/sentinel"
	"mailcheck/pkg/requestcontext"
)

type memoryEntry struct {
	result    models.CheckResult
	expiresAt time.Time
}

// MemoryCache is the fallback verdict cache when Redis is not configured.
// Expired entries are dropped lazily on Get and Set.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates an empty in-memory verdict cache.
func NewMemory() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (*models.CheckResult, error) {
	now := requestcontext.Now(ctx)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if now.After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another Set may have replaced it.
		if current, ok := c.entries[key]; ok && now.After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, sentinel.ErrNotFound
	}

	result := entry.result
	return &result, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, result *models.CheckResult, ttl time.Duration) error {
	now := requestcontext.Now(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		result:    *result,
		expiresAt: now.Add(ttl),
	}
	return nil
}
