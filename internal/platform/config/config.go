// Package config builds runtime configuration from environment variables so
// main stays lean. Typed values go through the pkg/convert converters;
// unparsable values fall back to their defaults.
package config

import (
	"os"
	"strings"
	"time"

	"mailcheck/pkg/convert"
	platformstrings "mailcheck/pkg/platform/strings"
)

// Config captures everything the server needs at startup.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DatabaseURL enables the PostgreSQL domain list store when set.
	// Empty means the in-memory store.
	DatabaseURL string

	// VerifyHosts enables live DNS verification of address domains.
	// Off by default: it makes checks slow and network-dependent.
	VerifyHosts bool

	// CacheTTL bounds how long a check verdict may be served from cache.
	CacheTTL time.Duration

	// CleanupInterval controls how often expired domain list entries are
	// removed.
	CleanupInterval time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// SeedBlockedDomains is a static deny list loaded into the domain
	// list store at startup, on top of whatever the store already holds.
	SeedBlockedDomains []string

	Redis RedisConfig
}

// RedisConfig captures Redis connection settings. An empty URL disables the
// Redis verdict cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:            envString("MAILCHECK_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("MAILCHECK_DATABASE_URL"),
		VerifyHosts:     envBool("MAILCHECK_VERIFY_HOSTS", false),
		CacheTTL:        envDuration("MAILCHECK_CACHE_TTL", 15*time.Minute),
		CleanupInterval: envDuration("MAILCHECK_CLEANUP_INTERVAL", time.Hour),
		ShutdownTimeout: envDuration("MAILCHECK_SHUTDOWN_TIMEOUT", 10*time.Second),
		SeedBlockedDomains: platformstrings.DedupeAndTrimLower(
			strings.Split(os.Getenv("MAILCHECK_BLOCKED_DOMAINS"), ","),
		),
		Redis: RedisConfig{
			URL:          os.Getenv("MAILCHECK_REDIS_URL"),
			PoolSize:     envInt("MAILCHECK_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("MAILCHECK_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("MAILCHECK_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("MAILCHECK_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("MAILCHECK_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := convert.Bool().FromString(v)
	if err != nil {
		return def
	}
	return parsed
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := convert.Int().FromString(v)
	if err != nil {
		return def
	}
	return parsed
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := convert.Duration().FromString(v)
	if err != nil {
		return def
	}
	return parsed
}
