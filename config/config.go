// Package config provides configuration management for the check-in service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Search   SearchConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// SearchConfig holds worker lookup tuning options.
type SearchConfig struct {
	// CacheCapacity bounds the ranked-result cache.
	CacheCapacity int
	// CacheTTL is short on purpose: worker and event records mutate.
	CacheTTL time.Duration
	// SweepInterval is how often the background cache sweep runs.
	SweepInterval time.Duration
	// DebounceDelay is the quiet window for coalescing rapid queries.
	DebounceDelay time.Duration
	// MaxCandidates caps rows fetched from the store per query.
	MaxCandidates int
	// FetchTimeout bounds one store call.
	FetchTimeout time.Duration
	// MonitorBufferSize is the performance monitor ring buffer capacity.
	MonitorBufferSize int
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Search: SearchConfig{
			CacheCapacity:     getEnvInt("SEARCH_CACHE_CAPACITY", 200),
			CacheTTL:          getEnvDuration("SEARCH_CACHE_TTL", 2*time.Minute),
			SweepInterval:     getEnvDuration("SEARCH_CACHE_SWEEP_INTERVAL", time.Minute),
			DebounceDelay:     getEnvDuration("SEARCH_DEBOUNCE_DELAY", 300*time.Millisecond),
			MaxCandidates:     getEnvInt("SEARCH_MAX_CANDIDATES", 10),
			FetchTimeout:      getEnvDuration("SEARCH_FETCH_TIMEOUT", 2*time.Second),
			MonitorBufferSize: getEnvInt("SEARCH_MONITOR_BUFFER", 1000),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "checkin_service"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
