package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIKey names the environment variable holding the bearer token
	EnvAPIKey = "GPT_API_KEY"

	DefaultModel          = "gpt-3.5-turbo"
	DefaultBaseURL        = "https://api.openai.com/v1"
	DefaultTimeoutSeconds = 30
)

// Config holds everything the CLI needs to run
type Config struct {
	APIKey         string
	Model          string
	BaseURL        string
	TimeoutSeconds int
	LogLevel       string
	LogFormat      string
	LogFile        string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; a missing one is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIKey:         os.Getenv(EnvAPIKey),
		Model:          DefaultModel,
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       "info",
		LogFormat:      "text",
	}

	if model := os.Getenv("GPT_MODEL"); model != "" {
		cfg.Model = model
	}
	if baseURL := os.Getenv("GPT_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeoutStr := os.Getenv("GPT_TIMEOUT_SECONDS"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			cfg.TimeoutSeconds = timeout
		}
	}
	if level := os.Getenv("GPT_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("GPT_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}
	cfg.LogFile = os.Getenv("GPT_LOG_FILE")

	return cfg
}

// Validate checks that the configuration can actually drive a request
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New(EnvAPIKey + " is not set (export it or add it to .env)")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
