// Package config loads ergorun settings from config files, environment
// variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/accordproject/ergorun/internal/classify"
)

// EnvPrefix is the prefix of environment variables read as config keys.
const EnvPrefix = "ERGORUN_"

// ErrNotFound is returned when an explicitly requested config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Configuration represents the ergorun configuration
type Configuration struct {
	EngineCmd       string   `koanf:"engine_cmd" validate:"required"`
	EngineArgs      []string `koanf:"engine_args"`
	Timeout         int      `koanf:"timeout" validate:"min=0,max=86400"`
	SchemaExt       string   `koanf:"schema_ext" validate:"required,excludes=."`
	LogicExt        string   `koanf:"logic_ext" validate:"required,excludes=.,nefield=SchemaExt"`
	ExpandGlobs     bool     `koanf:"expand_globs"`
	InlineResources bool     `koanf:"inline_resources"` // Send file contents instead of paths to the engine
	ShowProgress    bool     `koanf:"show_progress"`    // Spinner on stderr while waiting for the engine (TTY only)
	Verbose         bool     `koanf:"verbose"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
//
// An empty localConfigPath means "discover": the first .ergorun.{json,yaml,yml,toml}
// in the working directory is used if present. A non-empty path must exist.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		if globalPath := findConfig(filepath.Join(homeDir, ".ergorun"), "config"); globalPath != "" {
			if err := k.Load(file.Provider(globalPath), parserFor(globalPath)); err != nil {
				return nil, fmt.Errorf("failed to load global config %s: %w", globalPath, err)
			}
		}
	}

	if localConfigPath == "" {
		localConfigPath = findConfig(".", ".ergorun")
	} else if _, err := os.Stat(localConfigPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, localConfigPath)
	}
	if localConfigPath != "" {
		if err := k.Load(file.Provider(localConfigPath), parserFor(localConfigPath)); err != nil {
			return nil, fmt.Errorf("failed to load local config %s: %w", localConfigPath, err)
		}
	}

	// Environment variables have the highest priority
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Extensions returns the classifier extension tokens configured.
func (c *Configuration) Extensions() classify.Extensions {
	return classify.Extensions{Schema: c.SchemaExt, Logic: c.LogicExt}
}

// TimeoutDuration returns Timeout as a duration (0 = no timeout).
func (c *Configuration) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// envTransform converts environment variable names to config keys
// Example: ERGORUN_ENGINE_CMD -> engine_cmd
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// findConfig returns the first existing dir/base.<ext> for the supported
// formats, or "".
func findConfig(dir, base string) string {
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		p := filepath.Join(dir, base+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
