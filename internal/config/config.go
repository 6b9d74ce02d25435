// Package config defines the llm-ask configuration model and default values.
//
// Required fields are validated up front with descriptive errors rather than
// falling back to placeholder values: a misconfigured run fails fast before
// any network attempt is made.
package config

import (
	"fmt"

	"github.com/sandstream/llm-ask/internal/llm"
)

// Default values applied by NewDefaultConfig.
const (
	DefaultModel          = "anthropic/claude-3-haiku:beta"
	DefaultMaxRetries     = 3
	DefaultTimeoutSeconds = 120
)

// Config holds every configuration field for the llm-ask CLI.
// The API key is always supplied by the caller; the core client never reads
// it from ambient process state.
type Config struct {
	APIKey         string
	Model          string
	Endpoint       string
	MaxRetries     int
	TimeoutSeconds int
	Verbose        bool
}

// NewDefaultConfig returns a Config populated with all built-in defaults.
// The API key has no default and must be provided explicitly.
func NewDefaultConfig() *Config {
	return &Config{
		Model:          DefaultModel,
		Endpoint:       llm.DefaultEndpoint,
		MaxRetries:     DefaultMaxRetries,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Validate reports the first invalid field, if any.
func (c *Config) Validate() error {
	switch {
	case c.APIKey == "":
		return fmt.Errorf("API key is required: set OPENROUTER_API_KEY or pass --api-key")
	case c.Model == "":
		return fmt.Errorf("model must not be empty")
	case c.Endpoint == "":
		return fmt.Errorf("endpoint must not be empty")
	case c.MaxRetries < 1:
		return fmt.Errorf("max retries must be at least 1, got %d", c.MaxRetries)
	case c.TimeoutSeconds <= 0:
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
