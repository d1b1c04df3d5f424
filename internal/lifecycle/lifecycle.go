package lifecycle

import (
	"context"
	"time"
)

// Run wraps fn with timing and notification dispatch.
// It notifies handler.OnCommandStart, executes fn, calculates the duration
// and calls handler.OnCommandComplete with the results.
//
// If handler is nil, fn is still executed but no notification is sent.
// The original error from fn is always returned unchanged.
func Run(handler Handler, name string, fn func() error) error {
	notifyStart(handler, name)
	start := time.Now()
	fnErr := fn()
	notifyComplete(handler, name, fnErr == nil, time.Since(start))
	return fnErr
}

// RunWithContext wraps context-aware execution.
// If the context is already cancelled, returns the context error immediately
// without executing fn or notifying OnCommandStart. Otherwise behaves like Run.
func RunWithContext(ctx context.Context, handler Handler, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		notifyComplete(handler, name, false, 0)
		return err
	}
	return Run(handler, name, func() error { return fn(ctx) })
}

// notifyStart safely calls OnCommandStart with panic recovery.
func notifyStart(handler Handler, name string) {
	if handler == nil {
		return
	}
	defer func() { _ = recover() }()
	handler.OnCommandStart(name)
}

// notifyComplete safely calls OnCommandComplete with panic recovery.
func notifyComplete(handler Handler, name string, success bool, duration time.Duration) {
	if handler == nil {
		return
	}
	defer func() { _ = recover() }()
	handler.OnCommandComplete(name, success, duration)
}
