// Package signal ties context cancellation to SIGINT and SIGTERM for the
// cliopts command-line tools.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithInterrupt derives a context from parent that is canceled when SIGINT
// or SIGTERM arrives, running onInterrupt (if non-nil) first. After the
// first signal the handler deregisters itself, so a second interrupt falls
// back to the default behavior and ends the process outright.
//
// The returned cancel function releases the handler when the caller finishes
// on its own; call it even on the happy path.
func WithInterrupt(parent context.Context, onInterrupt func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
