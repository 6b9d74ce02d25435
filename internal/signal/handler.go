// Package signal provides signal handling for graceful shutdown of the
// llm-ask CLI.
//
// SetupSignalHandler registers handlers for SIGINT and SIGTERM so an
// in-flight request or backoff sleep can be abandoned by canceling the
// provided context.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received it calls the onInterrupt callback (if non-nil),
// then cancels the context. The listening goroutine exits when either a
// signal arrives or the context is canceled by other means.
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
			return
		}
	}()
}
