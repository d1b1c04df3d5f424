package cli

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/accordproject/ergorun/internal/engine"
	clierrors "github.com/accordproject/ergorun/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":                 {err: nil, want: ExitSuccess},
		"explicit exit error": {err: NewExitError(ExitTimeout), want: ExitTimeout},
		"engine rejection":    {err: engine.NewError([]byte(`{"message":"bad"}`)), want: ExitEngineFailed},
		"engine not found":    {err: fmt.Errorf("%w: x", engine.ErrNotFound), want: ExitMissingDependencies},
		"engine timeout":      {err: engine.NewTimeoutError(time.Second, "x"), want: ExitTimeout},
		"wrapped timeout": {
			err:  &clierrors.CLIError{Category: clierrors.Runtime, Message: "t", Err: engine.NewTimeoutError(time.Second, "x")},
			want: ExitTimeout,
		},
		"argument error":     {err: clierrors.NewArgumentError("bad"), want: ExitInvalidArguments},
		"config error":       {err: clierrors.NewConfigError("bad"), want: ExitConfigError},
		"prerequisite error": {err: clierrors.NewPrerequisiteError("bad"), want: ExitMissingDependencies},
		"runtime error":      {err: clierrors.NewRuntimeError("bad"), want: ExitEngineFailed},
		"cobra error":        {err: errors.New(`unknown command "x" for "ergorun"`), want: ExitInvalidArguments},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
