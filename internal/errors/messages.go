package errors

import (
	"fmt"
	"strings"
	"time"
)

// MissingOptions reports required command options that were not given.
func MissingOptions(command string, options []string, usage string) *CLIError {
	flags := make([]string, len(options))
	for i, o := range options {
		flags[i] = "--" + o
	}
	noun := "option"
	if len(options) > 1 {
		noun = "options"
	}
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("%s: missing required %s: %s", command, noun, strings.Join(flags, ", ")),
		usage,
		fmt.Sprintf("Run 'ergorun %s --help' to see all options", command),
	)
}

// InvalidOption reports an option value that failed validation.
func InvalidOption(command, option, value, reason string, usage string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("%s: invalid value %q for --%s: %s", command, value, option, reason),
		usage,
	)
}

// EngineNotFound reports that the contract engine executable is not installed.
func EngineNotFound(cmd string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("contract engine %q not found in PATH", cmd),
		"Install the Ergo contract engine",
		"Or point engine_cmd (ERGORUN_ENGINE_CMD) at its location",
	)
}

// EngineTimeout reports that the contract engine did not answer in time.
func EngineTimeout(timeout time.Duration, command string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("contract engine timed out after %s: %s", timeout, command),
		"Increase timeout in the config file or via ERGORUN_TIMEOUT",
	)
}

// ConfigFileNotFound reports an explicitly requested config file that does not exist.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Check the --config path",
	)
}

// ConfigParseError reports a config file that could not be loaded.
func ConfigParseError(path string, err error) *CLIError {
	e := NewConfigError(
		fmt.Sprintf("failed to load config %s: %v", path, err),
		"Check the file syntax (JSON, YAML or TOML)",
		"Remove the file to fall back to defaults",
	)
	e.Err = err
	return e
}
