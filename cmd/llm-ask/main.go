package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandstream/llm-ask/internal/cli"
	"github.com/sandstream/llm-ask/internal/completeness"
	"github.com/sandstream/llm-ask/internal/config"
	"github.com/sandstream/llm-ask/internal/exitcode"
	"github.com/sandstream/llm-ask/internal/llm"
	"github.com/sandstream/llm-ask/internal/logging"
	sighandler "github.com/sandstream/llm-ask/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "llm-ask [flags] PROMPT",
		Short:   "Ask an LLM a question with retry on truncated responses",
		Long:    "llm-ask submits a prompt to the OpenRouter chat-completions API, retrying on timeouts, transport errors, and responses that look cut off, until a complete answer arrives or the retry budget runs out.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg, args); err != nil {
				return err
			}
			return run(cfg, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Usage)
	}
}

func run(cfg *config.Config, prompt string) error {
	logging.SetVerbose(cfg.Verbose)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted — abandoning request...")
	})

	client := &llm.Client{
		Endpoint:   cfg.Endpoint,
		Classifier: completeness.Heuristic{},
		OnAttempt: func(attempt, maxRetries int, outcome *llm.AttemptError) {
			logging.Warn(fmt.Sprintf("Attempt %d/%d failed: %s", attempt+1, maxRetries, outcome.Kind))
			if outcome.Err != nil {
				logging.Debug(outcome.Err.Error())
			}
		},
	}

	logging.Debug(fmt.Sprintf("Model %s, timeout %s per attempt, up to %d attempts",
		cfg.Model, logging.FormatDuration(cfg.TimeoutSeconds), cfg.MaxRetries))

	start := time.Now()
	content, err := client.Complete(ctx, llm.CompletionRequest{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		Messages:   []llm.Message{{Role: "user", Content: prompt}},
		MaxRetries: cfg.MaxRetries,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(exitcode.Interrupted)
		}

		var exhausted *llm.ExhaustedError
		if errors.As(err, &exhausted) {
			logging.Error(err.Error())
			os.Exit(exitcode.Exhausted)
		}

		return err
	}

	logging.Debug(fmt.Sprintf("Response accepted after %s", logging.FormatDuration(int(time.Since(start).Seconds()))))
	fmt.Println(content)
	return nil
}
