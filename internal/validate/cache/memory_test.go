package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailcheck/internal/validate/models"
	"mailcheck/pkg/platform/sentinel"
	"mailcheck/pkg/requestcontext"
)

func TestMemoryCache(t *testing.T) {
	now := time.Now()
	ctx := requestcontext.WithTime(context.Background(), now)

	result := &models.CheckResult{
		Input:     "user@example.com",
		Verdict:   models.VerdictValid,
		Canonical: "<user@example.com>",
	}

	t.Run("miss on empty cache", func(t *testing.T) {
		c := NewMemory()
		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		c := NewMemory()
		require.NoError(t, c.Set(ctx, "k", result, time.Minute))

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, result, got)
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		c := NewMemory()
		require.NoError(t, c.Set(ctx, "k", result, time.Minute))

		later := requestcontext.WithTime(context.Background(), now.Add(2*time.Minute))
		_, err := c.Get(later, "k")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		c := NewMemory()
		require.NoError(t, c.Set(ctx, "k", result, time.Minute))

		first, err := c.Get(ctx, "k")
		require.NoError(t, err)
		first.Reason = "mutated"

		second, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Empty(t, second.Reason)
	})
}
