package cli

import (
	"errors"

	"github.com/accordproject/ergorun/internal/cli/shared"
	"github.com/accordproject/ergorun/internal/engine"
	clierrors "github.com/accordproject/ergorun/internal/errors"
	"github.com/accordproject/ergorun/internal/report"
)

// Exit codes for the ergorun CLI (re-exported from shared)
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = shared.ExitSuccess

	// ExitEngineFailed indicates the contract engine rejected the call
	ExitEngineFailed = shared.ExitEngineFailed

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitMissingDependencies indicates the contract engine is not installed
	ExitMissingDependencies = shared.ExitMissingDependency

	// ExitTimeout indicates the contract engine timed out
	ExitTimeout = shared.ExitTimeout

	// ExitConfigError indicates the configuration could not be loaded
	ExitConfigError = shared.ExitConfigError
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if code, ok := shared.ExitCodeOf(err); ok {
		return code
	}

	var timeout *engine.TimeoutError
	switch {
	case errors.As(err, &timeout):
		return ExitTimeout
	case errors.Is(err, engine.ErrNotFound):
		return ExitMissingDependencies
	}

	var engErr *engine.Error
	if errors.As(err, &engErr) {
		return ExitEngineFailed
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Configuration:
			return ExitConfigError
		case clierrors.Prerequisite:
			return ExitMissingDependencies
		}
		return ExitEngineFailed
	}

	// Untagged errors come from cobra itself: unknown commands or flags.
	return ExitInvalidArguments
}

// printError reports err on stderr. Engine failures print their message and
// JSON detail; CLI errors print with usage and remediation hints.
func (a *app) printError(err error) {
	if _, ok := shared.ExitCodeOf(err); ok {
		return
	}
	var engErr *engine.Error
	if errors.As(err, &engErr) {
		report.New(a.stdout, a.stderr).Failure(err)
		return
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(a.stderr, cliErr)
		return
	}
	clierrors.FprintError(a.stderr, clierrors.Wrap(err, clierrors.Argument, "Run 'ergorun --help' for usage"))
}
