// Package errors tests CLI error rendering with and without colors.
// Related: internal/errors/format.go
// Tags: errors, formatting, colors, output, plain-text
package errors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  *CLIError
		want string
	}{
		"nil": {
			err:  nil,
			want: "",
		},
		"message only": {
			err:  NewRuntimeError("contract engine timed out after 5s"),
			want: "Runtime Error: contract engine timed out after 5s\n",
		},
		"usage and remediation": {
			err: NewArgumentErrorWithUsage(
				"invoke: missing required option: --state",
				"ergorun invoke --clauseName [name] --contract [file] --state [file] --params [file]",
				"Run 'ergorun invoke --help' to see all options",
			),
			want: "Argument Error: invoke: missing required option: --state\n" +
				"\nUsage:\n  ergorun invoke --clauseName [name] --contract [file] --state [file] --params [file]\n" +
				"\nTo fix this:\n  - Run 'ergorun invoke --help' to see all options\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatErrorPlain(tt.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatError(nil))

	err := NewConfigError("config file not found: x.yaml", "Check the --config path")
	out := FormatError(err)
	assert.Contains(t, out, "Configuration Error")
	assert.Contains(t, out, "config file not found: x.yaml")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "Check the --config path")
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	t.Run("nil error does nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, nil)
		assert.Zero(t, buf.Len())
	})

	t.Run("buffers get plain output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := NewPrerequisiteError(`contract engine "ergo-engine" not found in PATH`)
		FprintError(&buf, err)
		assert.Equal(t, FormatErrorPlain(err), buf.String())
	})
}
