// Package health checks that ergorun can reach a contract engine: the
// configuration loads and the engine executable is on PATH.
package health

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/accordproject/ergorun/internal/config"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// LookPath resolves executables; tests replace it.
var LookPath = exec.LookPath

// RunHealthChecks loads the configuration from configPath (or the usual
// locations when empty) and checks the engine it names.
func RunHealthChecks(configPath string) *HealthReport {
	report := &HealthReport{Passed: true}

	cfg, err := config.Load(configPath)
	report.add(CheckConfig(err))
	if err != nil {
		return report
	}
	report.add(CheckEngine(cfg.EngineCmd))
	return report
}

func (r *HealthReport) add(c CheckResult) {
	r.Checks = append(r.Checks, c)
	if !c.Passed {
		r.Passed = false
	}
}

// CheckConfig reports the outcome of loading the configuration.
func CheckConfig(loadErr error) CheckResult {
	if loadErr != nil {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: fmt.Sprintf("Configuration invalid: %v", loadErr),
		}
	}
	return CheckResult{
		Name:    "Configuration",
		Passed:  true,
		Message: "Configuration loaded",
	}
}

// CheckEngine checks if the contract engine executable is available
func CheckEngine(engineCmd string) CheckResult {
	path, err := LookPath(engineCmd)
	if err != nil {
		return CheckResult{
			Name:    "Contract engine",
			Passed:  false,
			Message: fmt.Sprintf("Contract engine %q not found in PATH", engineCmd),
		}
	}

	return CheckResult{
		Name:    "Contract engine",
		Passed:  true,
		Message: fmt.Sprintf("Contract engine found at %s", path),
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder

	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Message)
		} else {
			fmt.Fprintf(&b, "✗ Error: %s\n", check.Message)
		}
	}

	return b.String()
}
