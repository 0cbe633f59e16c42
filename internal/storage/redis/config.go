package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings. Distributions and sessions are session-scoped data;
	// they expire rather than accumulate.
	DistributionTTL time.Duration
	SessionTTL      time.Duration
	ChatTTL         time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:             "redis://localhost:6379",
		PoolSize:        10,
		MinIdleConns:    2,
		DistributionTTL: 24 * time.Hour,
		SessionTTL:      24 * time.Hour,
		ChatTTL:         24 * time.Hour,
	}
}
