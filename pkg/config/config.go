// Package config loads process configuration from environment variables,
// optionally preloaded from a local .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Sentinel errors for the two required values. Each missing value gets its
// own message so an operator can tell which one to fix.
var (
	ErrMissingEndpoint = errors.New("FFD_API_URL environment variable is not set")
	ErrMissingKey      = errors.New("FFD_API_KEY environment variable is not set")
)

// Config holds all process settings.
type Config struct {
	// EndpointURL is the dashboard API endpoint (required).
	EndpointURL string
	// APIKey is the static credential POSTed to the endpoint (required).
	APIKey string

	// TelegramToken and TelegramChatID enable publication when both are set.
	TelegramToken  string
	TelegramChatID int64
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		EndpointURL:   os.Getenv("FFD_API_URL"),
		APIKey:        os.Getenv("FFD_API_KEY"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
	if cfg.EndpointURL == "" {
		return nil, ErrMissingEndpoint
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingKey
	}

	if chat := os.Getenv("TELEGRAM_CHAT_ID"); chat != "" {
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", chat, err)
		}
		cfg.TelegramChatID = id
	}
	return cfg, nil
}

// TelegramConfigured reports whether both Telegram settings are present.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
