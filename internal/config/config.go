package config

import "os"

// Config holds all application configuration
type Config struct {
	// APIBaseURL is the root of the remote book club API
	APIBaseURL string

	// RedisAddr is where local selection state is persisted
	RedisAddr string

	// RedisPassword authenticates against Redis, if set
	RedisPassword string

	// Profile names the selection slot to use, letting several admins
	// share a Redis instance
	Profile string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		APIBaseURL:    getEnv("BOOKCLUB_API_URL", "http://localhost:8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Profile:       getEnv("BOOKCLUB_PROFILE", "default"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
