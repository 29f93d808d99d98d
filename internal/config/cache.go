package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig defines settings for the GET response cache middleware.
// When Enabled is false or no Redis client is available, caching is a
// no-op.  TTL bounds staleness of cached availability answers.
type CacheConfig struct {
	Enabled      bool          // master switch
	TTL          time.Duration // lifetime of cache entries
	Prefix       string        // key namespace in Redis
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "10s")),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: atoiOr(getenv("CACHE_MAX_BODY_BYTES", "1048576"), 1<<20),
	}
}

// Helper functions shared across the config files in this package.

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiOr(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
