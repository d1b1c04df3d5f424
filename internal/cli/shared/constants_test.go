package shared

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err      error
		wantCode int
		wantOK   bool
	}{
		"exit error": {
			err:      NewExitError(ExitTimeout),
			wantCode: ExitTimeout,
			wantOK:   true,
		},
		"wrapped exit error": {
			err:      fmt.Errorf("run: %w", NewExitError(ExitConfigError)),
			wantCode: ExitConfigError,
			wantOK:   true,
		},
		"plain error": {
			err: fmt.Errorf("boom"),
		},
		"nil": {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			code, ok := ExitCodeOf(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestNewExitError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exit code 4", NewExitError(ExitMissingDependency).Error())
}
