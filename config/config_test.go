package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Equal(t, 200, cfg.Search.CacheCapacity)
	assert.Equal(t, 2*time.Minute, cfg.Search.CacheTTL)
	assert.Equal(t, time.Minute, cfg.Search.SweepInterval)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.DebounceDelay)
	assert.Equal(t, 10, cfg.Search.MaxCandidates)
	assert.Equal(t, 2*time.Second, cfg.Search.FetchTimeout)
	assert.Equal(t, 1000, cfg.Search.MonitorBufferSize)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "checkin_service", cfg.Database.DatabaseName)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
	assert.Equal(t, 2, cfg.Database.CircuitBreakerSuccessThreshold)
	assert.Equal(t, 30*time.Second, cfg.Database.CircuitBreakerTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEARCH_CACHE_CAPACITY", "500")
	t.Setenv("SEARCH_CACHE_TTL", "5m")
	t.Setenv("SEARCH_DEBOUNCE_DELAY", "150ms")
	t.Setenv("MONGODB_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 500, cfg.Search.CacheCapacity)
	assert.Equal(t, 5*time.Minute, cfg.Search.CacheTTL)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.DebounceDelay)
	assert.False(t, cfg.Database.Enabled)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://app.example.com")
	assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.example.com")
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("SEARCH_CACHE_TTL", "soon")
	t.Setenv("MONGODB_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 2*time.Minute, cfg.Search.CacheTTL)
	assert.True(t, cfg.Database.Enabled)
}
