package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandstream/llm-ask/internal/config"
	"github.com/sandstream/llm-ask/internal/llm"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()

	assert.Equal(t, "anthropic/claude-3-haiku:beta", cfg.Model)
	assert.Equal(t, llm.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 120, cfg.TimeoutSeconds)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.APIKey, "the API key must have no built-in default")
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg := config.NewDefaultConfig()
		cfg.APIKey = "sk-test"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{
			name:    "missing api key",
			mutate:  func(c *config.Config) { c.APIKey = "" },
			wantMsg: "API key is required",
		},
		{
			name:    "empty model",
			mutate:  func(c *config.Config) { c.Model = "" },
			wantMsg: "model must not be empty",
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *config.Config) { c.Endpoint = "" },
			wantMsg: "endpoint must not be empty",
		},
		{
			name:    "zero max retries",
			mutate:  func(c *config.Config) { c.MaxRetries = 0 },
			wantMsg: "max retries must be at least 1",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *config.Config) { c.TimeoutSeconds = -5 },
			wantMsg: "timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
