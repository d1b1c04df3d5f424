// Package resource defines the references handed to the contract engine: a
// reference either names a file for the engine to load or carries the content
// inline. Exactly one of the two is ever set.
package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// EmptyObject is the inline JSON used when an optional JSON input is omitted.
const EmptyObject = "{}"

type kind uint8

const (
	kindNone kind = iota
	kindFile
	kindContent
)

// Ref is a reference to a file path or to inline content. The zero Ref is
// invalid; build one with File or Content.
type Ref struct {
	kind  kind
	value string
}

// File returns a reference to the file at path.
func File(path string) Ref {
	return Ref{kind: kindFile, value: path}
}

// Content returns a reference carrying s inline.
func Content(s string) Ref {
	return Ref{kind: kindContent, value: s}
}

// Empty returns an inline empty JSON object.
func Empty() Ref {
	return Content(EmptyObject)
}

// Files maps each path to a file reference, keeping order.
func Files(paths []string) []Ref {
	refs := make([]Ref, 0, len(paths))
	for _, p := range paths {
		refs = append(refs, File(p))
	}
	return refs
}

// Path returns the referenced path and whether r is a file reference.
func (r Ref) Path() (string, bool) {
	return r.value, r.kind == kindFile
}

// Content returns the inline content and whether r is a content reference.
func (r Ref) Content() (string, bool) {
	return r.value, r.kind == kindContent
}

// String renders r for diagnostics.
func (r Ref) String() string {
	switch r.kind {
	case kindFile:
		return r.value
	case kindContent:
		return "content:" + r.value
	default:
		return "<none>"
	}
}

// Inline reads a file reference and returns it as a content reference using
// readFile (os.ReadFile when nil). Content references are returned unchanged.
func (r Ref) Inline(readFile func(string) ([]byte, error)) (Ref, error) {
	path, ok := r.Path()
	if !ok {
		return r, nil
	}
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(path)
	if err != nil {
		return Ref{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Content(string(data)), nil
}

type wire struct {
	File    *string `json:"file,omitempty"`
	Content *string `json:"content,omitempty"`
}

// MarshalJSON encodes r as {"file": path} or {"content": text}.
func (r Ref) MarshalJSON() ([]byte, error) {
	v := r.value
	switch r.kind {
	case kindFile:
		return json.Marshal(wire{File: &v})
	case kindContent:
		return json.Marshal(wire{Content: &v})
	default:
		return nil, errors.New("resource: marshal of empty reference")
	}
}

// UnmarshalJSON decodes the form written by MarshalJSON. An object with both
// or neither key is rejected.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.File != nil && w.Content != nil:
		return errors.New("resource: reference has both file and content")
	case w.File != nil:
		*r = File(*w.File)
	case w.Content != nil:
		*r = Content(*w.Content)
	default:
		return errors.New("resource: reference has neither file nor content")
	}
	return nil
}
