package domainlist

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailcheck/internal/validate/models"
	"mailcheck/pkg/platform/sentinel"
)

func newEntry(domain string, expiresAt *time.Time) *models.DomainEntry {
	return &models.DomainEntry{
		ID:        uuid.New(),
		Domain:    domain,
		Reason:    "test",
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("lookup missing domain returns not found", func(t *testing.T) {
		store := NewMemory()
		_, err := store.Lookup(ctx, "example.com", now)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("add then lookup", func(t *testing.T) {
		store := NewMemory()
		require.NoError(t, store.Add(ctx, newEntry("spam.example", nil)))

		entry, err := store.Lookup(ctx, "spam.example", now)
		require.NoError(t, err)
		assert.Equal(t, "spam.example", entry.Domain)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		store := NewMemory()
		require.NoError(t, store.Add(ctx, newEntry("Spam.Example", nil)))

		entry, err := store.Lookup(ctx, "SPAM.EXAMPLE", now)
		require.NoError(t, err)
		assert.Equal(t, "spam.example", entry.Domain)
	})

	t.Run("duplicate add conflicts", func(t *testing.T) {
		store := NewMemory()
		require.NoError(t, store.Add(ctx, newEntry("spam.example", nil)))
		assert.ErrorIs(t, store.Add(ctx, newEntry("spam.example", nil)), sentinel.ErrConflict)
	})

	t.Run("expired entry can be re-added", func(t *testing.T) {
		store := NewMemory()
		past := now.Add(-time.Hour)
		require.NoError(t, store.Add(ctx, newEntry("spam.example", &past)))
		require.NoError(t, store.Add(ctx, newEntry("spam.example", nil)))
	})

	t.Run("expired entry is not returned", func(t *testing.T) {
		store := NewMemory()
		past := now.Add(-time.Minute)
		require.NoError(t, store.Add(ctx, newEntry("spam.example", &past)))

		_, err := store.Lookup(ctx, "spam.example", now)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		store := NewMemory()
		require.NoError(t, store.Add(ctx, newEntry("spam.example", nil)))
		require.NoError(t, store.Remove(ctx, "spam.example"))

		_, err := store.Lookup(ctx, "spam.example", now)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.ErrorIs(t, store.Remove(ctx, "spam.example"), sentinel.ErrNotFound)
	})

	t.Run("list skips expired entries", func(t *testing.T) {
		store := NewMemory()
		past := now.Add(-time.Minute)
		future := now.Add(time.Hour)
		require.NoError(t, store.Add(ctx, newEntry("dead.example", &past)))
		require.NoError(t, store.Add(ctx, newEntry("live.example", &future)))
		require.NoError(t, store.Add(ctx, newEntry("forever.example", nil)))

		entries, err := store.List(ctx, now)
		require.NoError(t, err)

		domains := make([]string, 0, len(entries))
		for _, e := range entries {
			domains = append(domains, e.Domain)
		}
		assert.ElementsMatch(t, []string{"live.example", "forever.example"}, domains)
	})

	t.Run("cleanup removes expired entries", func(t *testing.T) {
		store := NewMemory()
		past := now.Add(-time.Minute)
		require.NoError(t, store.Add(ctx, newEntry("dead.example", &past)))
		require.NoError(t, store.Add(ctx, newEntry("live.example", nil)))

		require.NoError(t, store.RemoveExpiredAt(ctx, now))

		entries, err := store.List(ctx, now)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "live.example", entries[0].Domain)
	})

	t.Run("lookup returns a copy", func(t *testing.T) {
		store := NewMemory()
		require.NoError(t, store.Add(ctx, newEntry("spam.example", nil)))

		first, err := store.Lookup(ctx, "spam.example", now)
		require.NoError(t, err)
		first.Reason = "mutated"

		second, err := store.Lookup(ctx, "spam.example", now)
		require.NoError(t, err)
		assert.Equal(t, "test", second.Reason)
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = store.Add(ctx, newEntry("racy.example", nil))
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Lookup(ctx, "racy.example", time.Now())
		}()
	}

	wg.Wait()

	_, err := store.Lookup(ctx, "racy.example", time.Now())
	assert.NoError(t, err)
}
