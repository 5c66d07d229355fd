package config

import (
	"os"
	"strconv"

	"drawlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Feed     FeedConfig
	Export   ExportConfig
}

// DatabaseConfig holds database connection settings. Driver selects the
// sqlx driver name: "postgres" in deployment, "sqlite3" for local files.
type DatabaseConfig struct {
	Driver string
	URL    string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	OpsPort string
	GinMode string
}

// FeedConfig holds draw feed ingestion settings
type FeedConfig struct {
	URL      string
	GameType string
	Provider string
}

// ExportConfig holds report export settings
type ExportConfig struct {
	Dir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			Driver: getEnvOrDefault("DB_DRIVER", "sqlite3"),
			URL:    getEnvOrDefault("DATABASE_URL", "drawlab.db"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			OpsPort: getEnvOrDefault("OPS_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Feed: FeedConfig{
			URL:      getEnvOrDefault("FEED_URL", ""),
			GameType: getEnvOrDefault("FEED_GAME_TYPE", "lotto"),
			Provider: getEnvOrDefault("FEED_PROVIDER", ""),
		},
		Export: ExportConfig{
			Dir: getEnvOrDefault("EXPORT_DIR", "."),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case "postgres", "sqlite3":
	default:
		return errors.ConfigInvalid("DB_DRIVER must be postgres or sqlite3, got " + config.Database.Driver)
	}
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + config.Server.Port)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
