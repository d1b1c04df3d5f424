package config

import "github.com/accordproject/ergorun/internal/classify"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"engine_cmd":       "ergo-engine",
		"engine_args":      []string{},
		"timeout":          0,
		"schema_ext":       classify.SchemaExt,
		"logic_ext":        classify.LogicExt,
		"expand_globs":     true,
		"inline_resources": false,
		"show_progress":    false,
		"verbose":          false,
	}
}
