// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, HTTP and rate limit settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// RateLimit contains inbound request rate limiting configuration
	RateLimit RateLimitConfig

	// Debug enables verbose logging
	Debug bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string

	// TTL is the metadata cache TTL in seconds
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file path for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// HTTPConfig holds outbound request configuration
type HTTPConfig struct {
	// TimeoutSeconds is the total per-request timeout
	TimeoutSeconds int
}

// RateLimitConfig holds per-client rate limit settings
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate per client IP
	RequestsPerSecond float64

	// Burst is the short-term burst allowance per client IP
	Burst int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:  getEnvAsIntOrDefault("CACHE_TTL", 86400),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "cache.db"),
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 5),
			Burst:             getEnvAsIntOrDefault("RATE_LIMIT_BURST", 10),
		},
		Debug: getEnvOrDefault("DEBUG", "false") == "true",
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	case "memory":
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'sqlite'")
	}

	if c.Cache.TTL < 1 {
		return errors.New("cache TTL must be at least 1 second")
	}

	if c.HTTP.TimeoutSeconds < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("rate limit must be positive")
	}
	if c.RateLimit.Burst < 1 {
		return errors.New("rate limit burst must be at least 1")
	}

	return nil
}
