package engine

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when the engine executable cannot be started
// because it does not exist.
var ErrNotFound = errors.New("contract engine not found")

// TimeoutError is returned when the engine does not answer within the
// configured timeout.
type TimeoutError struct {
	Timeout time.Duration
	Command string
}

// NewTimeoutError creates a TimeoutError for the given command line.
func NewTimeoutError(timeout time.Duration, command string) *TimeoutError {
	return &TimeoutError{Timeout: timeout, Command: command}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command timed out after %s: %s (hint: increase timeout in config)", e.Timeout, e.Command)
}

// Unwrap lets errors.Is match context.DeadlineExceeded.
func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}
