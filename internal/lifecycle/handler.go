// Package lifecycle wraps the single engine call a command makes with timing
// and notifications, so progress display and diagnostics stay out of the
// dispatcher.
//
// The lifecycle package is intentionally minimal: no event bus, no goroutines.
// Each wrapper captures the start time, notifies handlers, runs the function
// and reports the outcome with its duration.
package lifecycle

import "time"

// Handler receives command lifecycle notifications.
//
// The wrapper functions check for a nil Handler and recover from handler
// panics, so a misbehaving handler never changes a command's outcome.
type Handler interface {
	// OnCommandStart is called right before the command's work begins.
	OnCommandStart(name string)

	// OnCommandComplete is called when the command's work finishes.
	//   - name: the command name (e.g., "execute", "invoke")
	//   - success: true if the work completed without error
	//   - duration: how long the work took
	OnCommandComplete(name string, success bool, duration time.Duration)
}

// Handlers fans notifications out to several handlers in order. Nil entries
// are skipped.
type Handlers []Handler

// OnCommandStart implements Handler.
func (hs Handlers) OnCommandStart(name string) {
	for _, h := range hs {
		notifyStart(h, name)
	}
}

// OnCommandComplete implements Handler.
func (hs Handlers) OnCommandComplete(name string, success bool, duration time.Duration) {
	for _, h := range hs {
		notifyComplete(h, name, success, duration)
	}
}
