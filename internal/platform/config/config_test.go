package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.VerifyHosts)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Empty(t, cfg.SeedBlockedDomains)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("MAILCHECK_ADDR", ":9090")
	t.Setenv("MAILCHECK_VERIFY_HOSTS", "true")
	t.Setenv("MAILCHECK_CACHE_TTL", "1m")
	t.Setenv("MAILCHECK_BLOCKED_DOMAINS", " Spam.Example ,junk.example,, spam.example")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.VerifyHosts)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"spam.example", "junk.example"}, cfg.SeedBlockedDomains)
}

func TestFromEnv_UnparsableValuesFallBack(t *testing.T) {
	t.Setenv("MAILCHECK_VERIFY_HOSTS", "definitely")
	t.Setenv("MAILCHECK_CACHE_TTL", "soon")
	t.Setenv("MAILCHECK_REDIS_POOL_SIZE", "lots")

	cfg := FromEnv()

	assert.False(t, cfg.VerifyHosts)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
}
