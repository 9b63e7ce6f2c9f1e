package config

import (
	"os"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Log         LogConfig
	Storage     StorageConfig
	ThemeFile   string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// StorageConfig holds durable-storage settings
type StorageConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	logConfig := LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "console"),
	}

	storageConfig := StorageConfig{
		Path: getEnv("DATA_PATH", "hospital.db"),
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Log:         logConfig,
		Storage:     storageConfig,
		// Optional: path of the desktop colour-scheme file to watch for the
		// system theme signal. Empty disables the watcher.
		ThemeFile: getEnv("THEME_FILE", ""),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
