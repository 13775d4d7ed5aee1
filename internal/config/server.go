package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP API settings read from the environment.
type ServerConfig struct {
	Port      string
	CacheSize int
	RulesFile string
	LogLevel  string
}

// LoadServerConfig reads environment variables (optionally from the provided
// file) and materializes a ServerConfig.
func LoadServerConfig(envFile string) (*ServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine when everything comes from the environment.
		_ = godotenv.Load()
	}

	cacheSize, err := strconv.Atoi(getenvWithDefault("HERDSIM_CACHE_SIZE", "128"))
	if err != nil {
		return nil, fmt.Errorf("HERDSIM_CACHE_SIZE: %w", err)
	}

	cfg := &ServerConfig{
		Port:      getenvWithDefault("HERDSIM_PORT", "8080"),
		CacheSize: cacheSize,
		RulesFile: os.Getenv("HERDSIM_RULES_FILE"),
		LogLevel:  strings.ToLower(getenvWithDefault("HERDSIM_LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *ServerConfig) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Port == "" {
		return errors.New("HERDSIM_PORT must be provided")
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("HERDSIM_CACHE_SIZE must be positive, got %d", c.CacheSize)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("HERDSIM_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}

	return nil
}

// Addr is the listen address for the configured port
func (c *ServerConfig) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
