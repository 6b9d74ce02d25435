// Package cli provides flag binding and validation for the llm-ask CLI.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandstream/llm-ask/internal/config"
)

// APIKeyEnvVar is consulted for the API key when --api-key is not passed.
// The lookup happens here in the CLI layer; the client core only ever sees
// the key as an explicit parameter.
const APIKeyEnvVar = "OPENROUTER_API_KEY"

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check values and fill env defaults.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	flags.StringVar(&cfg.APIKey, "api-key", "", "OpenRouter API key (defaults to "+APIKeyEnvVar+" env var)")
	flags.StringVar(&cfg.Model, "model", config.DefaultModel, "Model identifier")
	flags.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "Chat-completions endpoint URL")
	flags.IntVar(&cfg.MaxRetries, "max-retries", config.DefaultMaxRetries, "Maximum attempts per request")
	flags.IntVar(&cfg.TimeoutSeconds, "timeout", config.DefaultTimeoutSeconds, "Per-attempt timeout in seconds")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug output")
}

// ValidateFlags checks flag values and the positional prompt after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(APIKeyEnvVar)
	}

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("prompt must not be blank")
	}

	return cfg.Validate()
}
