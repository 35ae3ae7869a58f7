package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	// InventoryFile is the JSON file the stock map is persisted to.
	InventoryFile string
	// LowStockThreshold is the default threshold for low-stock scans.
	LowStockThreshold int
	// LogLevel controls diagnostic verbosity (debug, info, warn, error).
	LogLevel string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	threshold, err := getenvInt("STOCKPILE_LOW_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InventoryFile:     getenvWithDefault("STOCKPILE_FILE", "inventory.json"),
		LowStockThreshold: threshold,
		LogLevel:          getenvWithDefault("STOCKPILE_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.InventoryFile == "" {
		return errors.New("STOCKPILE_FILE must not be empty")
	}

	if c.LowStockThreshold < 0 {
		return fmt.Errorf("STOCKPILE_LOW_THRESHOLD must be non-negative, got %d", c.LowStockThreshold)
	}

	if c.LogLevel == "" {
		return errors.New("STOCKPILE_LOG_LEVEL must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}
