// Package health_test tests configuration and contract engine health checks.
// Related: internal/health/health.go
// Tags: health, dependencies, validation, doctor

package health

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLookPath(t *testing.T, found map[string]string) {
	t.Helper()
	orig := LookPath
	t.Cleanup(func() { LookPath = orig })
	LookPath = func(file string) (string, error) {
		if p, ok := found[file]; ok {
			return p, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

// TestCheckEngine tests the contract engine health check
func TestCheckEngine(t *testing.T) {
	stubLookPath(t, map[string]string{"ergo-engine": "/usr/local/bin/ergo-engine"})

	tests := map[string]struct {
		cmd         string
		wantPassed  bool
		wantMessage string
	}{
		"engine present": {
			cmd:         "ergo-engine",
			wantPassed:  true,
			wantMessage: "Contract engine found at /usr/local/bin/ergo-engine",
		},
		"engine missing": {
			cmd:         "nope",
			wantPassed:  false,
			wantMessage: `Contract engine "nope" not found in PATH`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := CheckEngine(tt.cmd)
			assert.Equal(t, "Contract engine", result.Name)
			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

// TestRunHealthChecks tests running all health checks
func TestRunHealthChecks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("all pass", func(t *testing.T) {
		stubLookPath(t, map[string]string{"ergo-engine": "/bin/ergo-engine"})

		report := RunHealthChecks("")
		require.Len(t, report.Checks, 2)
		assert.True(t, report.Passed)
	})

	t.Run("engine missing", func(t *testing.T) {
		stubLookPath(t, nil)

		report := RunHealthChecks("")
		require.Len(t, report.Checks, 2)
		assert.False(t, report.Passed)
		assert.False(t, report.Checks[1].Passed)
	})

	t.Run("bad config stops early", func(t *testing.T) {
		stubLookPath(t, map[string]string{"ergo-engine": "/bin/ergo-engine"})
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		report := RunHealthChecks(path)
		require.Len(t, report.Checks, 1)
		assert.False(t, report.Passed)
		assert.Equal(t, "Configuration", report.Checks[0].Name)
	})
}

// TestFormatReport tests the report formatting
func TestFormatReport(t *testing.T) {
	tests := map[string]struct {
		report   *HealthReport
		expected []string
	}{
		"All checks pass": {
			report: &HealthReport{
				Checks: []CheckResult{
					{Name: "Configuration", Passed: true, Message: "Configuration loaded"},
					{Name: "Contract engine", Passed: true, Message: "Contract engine found at /bin/e"},
				},
				Passed: true,
			},
			expected: []string{"✓ Configuration: Configuration loaded", "✓ Contract engine: Contract engine found at /bin/e"},
		},
		"Engine missing": {
			report: &HealthReport{
				Checks: []CheckResult{
					{Name: "Configuration", Passed: true, Message: "Configuration loaded"},
					{Name: "Contract engine", Passed: false, Message: `Contract engine "e" not found in PATH`},
				},
			},
			expected: []string{"✓ Configuration", `✗ Error: Contract engine "e" not found in PATH`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output := FormatReport(tt.report)
			for _, want := range tt.expected {
				assert.Contains(t, output, want)
			}
		})
	}
}
