// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken    string
	DevGuildID  string
	DevAdminIDs []string

	// MongoDB
	MongoDBURL string
	DBName     string

	// Redis
	RedisURL string

	// Premium cache tuning
	PremiumCacheTTL     time.Duration
	PremiumRefreshEvery time.Duration
	PremiumExpiryBuffer time.Duration
	PremiumSafetyMargin time.Duration
	TrialDays           int

	// Dashboard
	JWTSecret    string
	DashboardURL string

	// Web Server
	Port string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook string
	LogsWebhook  string
}

var (
	Version   = "Dev-Local"
	BuildTime = "Today"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:    getEnv("botToken", ""),
		DevGuildID:  getEnv("devGuildId", ""),
		DevAdminIDs: splitList(getEnv("devAdminIds", "")),

		// MongoDB
		MongoDBURL: getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:     getEnv("dbName", "taskcord"),

		// Redis
		RedisURL: getEnv("redisUrl", "redis://localhost:6379"),

		// Premium cache tuning
		PremiumCacheTTL:     getEnvSeconds("premiumCacheTtl", 3600),
		PremiumRefreshEvery: getEnvSeconds("premiumRefreshInterval", 3600),
		PremiumExpiryBuffer: getEnvSeconds("premiumExpiryBuffer", 180),
		PremiumSafetyMargin: getEnvSeconds("premiumSafetyMargin", 180),
		TrialDays:           getEnvInt("trialDays", 7),

		// Dashboard
		JWTSecret:    getEnv("jwtSecret", ""),
		DashboardURL: getEnv("dashboardUrl", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Webhooks
		ErrorWebhook: getEnv("errorWebhook", ""),
		LogsWebhook:  getEnv("logsWebhook", ""),
	}
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvSeconds reads an environment variable expressed in seconds
func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}

// splitList splits a comma-separated environment value into trimmed entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
