// Package classify sorts positional file arguments into schema and logic files
// by extension. Classification is pure string matching; it never touches the
// file system and never fails.
package classify

import "strings"

// Default extension tokens (without the leading dot).
const (
	SchemaExt = "cto"
	LogicExt  = "ergo"
)

// Bundle holds the classified file paths. Order within each slice follows the
// order of the input.
type Bundle struct {
	SchemaPaths []string
	LogicPaths  []string
}

// Func classifies a list of paths. Callers that need a different extension set
// inject their own Func instead of changing the dispatcher.
type Func func(paths []string) Bundle

// Extensions is the pair of extension tokens recognized by a classifier.
type Extensions struct {
	Schema string
	Logic  string
}

// DefaultExtensions recognizes .cto schema files and .ergo logic files.
var DefaultExtensions = Extensions{Schema: SchemaExt, Logic: LogicExt}

// Classify partitions paths using DefaultExtensions.
func Classify(paths []string) Bundle {
	return DefaultExtensions.Classify(paths)
}

// Func returns e.Classify as a Func.
func (e Extensions) Func() Func {
	return e.Classify
}

// Classify partitions paths into schema and logic files. Paths whose extension
// matches neither token are dropped without error.
func (e Extensions) Classify(paths []string) Bundle {
	var b Bundle
	for _, p := range paths {
		switch ext := Ext(p); {
		case ext == "":
			// no extension
		case ext == e.Schema:
			b.SchemaPaths = append(b.SchemaPaths, p)
		case ext == e.Logic:
			b.LogicPaths = append(b.LogicPaths, p)
		}
	}
	return b
}

// Recognizes reports whether path has either of e's extensions.
func (e Extensions) Recognizes(path string) bool {
	ext := Ext(path)
	return ext != "" && (ext == e.Schema || ext == e.Logic)
}

// Ext returns the substring after the final '.' in path, or "" when path has
// no '.'. Unlike filepath.Ext the result has no leading dot and directory
// separators are not treated specially.
func Ext(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return path[i+1:]
}
