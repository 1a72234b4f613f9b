// Package shutdown provides graceful shutdown handling for long-lived
// commands.
package shutdown

import (
	"context"
	"os/signal"
	"syscall"
)

// Notify returns a context that is cancelled on SIGINT or SIGTERM. The
// returned stop function releases the signal handler; a second signal after
// cancellation terminates the process with the default behavior.
func Notify(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
