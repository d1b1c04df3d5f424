// Package engine is the boundary to the external Ergo contract engine. It
// defines the four operations the CLI can request, the request payloads, and
// the result and error shapes the engine answers with.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/accordproject/ergorun/internal/resource"
)

// Operation names an engine entry point.
type Operation string

const (
	OpExecute      Operation = "execute"
	OpInvoke       Operation = "invoke"
	OpInit         Operation = "init"
	OpGenerateText Operation = "generateText"
)

// Engine runs contracts. Each CLI command maps to exactly one method call.
type Engine interface {
	Execute(ctx context.Context, req ExecuteRequest) (Result, error)
	Invoke(ctx context.Context, req InvokeRequest) (Result, error)
	Init(ctx context.Context, req InitRequest) (Result, error)
	GenerateText(ctx context.Context, req GenerateTextRequest) (Result, error)
}

// ExecuteRequest sends one or more requests to a contract.
type ExecuteRequest struct {
	Logic       []string       `json:"logic"`
	Schemas     []string       `json:"schemas"`
	Contract    resource.Ref   `json:"contract"`
	State       *resource.Ref  `json:"state"` // nil encodes as null
	CurrentTime string         `json:"currentTime"`
	Requests    []resource.Ref `json:"request"`
}

// InvokeRequest calls a single clause of a contract.
type InvokeRequest struct {
	Logic       []string     `json:"logic"`
	Schemas     []string     `json:"schemas"`
	ClauseName  string       `json:"clauseName"`
	Contract    resource.Ref `json:"contract"`
	State       resource.Ref `json:"state"`
	CurrentTime string       `json:"currentTime"`
	Params      resource.Ref `json:"params"`
}

// InitRequest initializes contract state.
type InitRequest struct {
	Logic       []string     `json:"logic"`
	Schemas     []string     `json:"schemas"`
	Contract    resource.Ref `json:"contract"`
	CurrentTime string       `json:"currentTime"`
	Params      resource.Ref `json:"params"`
}

// GenerateTextRequest renders the natural-language text of a contract.
type GenerateTextRequest struct {
	Logic       []string     `json:"logic"`
	Schemas     []string     `json:"schemas"`
	Contract    resource.Ref `json:"contract"`
	CurrentTime string       `json:"currentTime"`
}

// Result is the JSON value an engine operation resolved with.
type Result json.RawMessage

// String returns the result as compact JSON. Results that are not valid JSON
// are returned as-is.
func (r Result) String() string {
	if len(r) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, r); err != nil {
		return string(r)
	}
	return buf.String()
}

// Response returns the "response" field of an object result. String values
// are returned unquoted, other values as compact JSON. A missing field yields
// ok == false.
func (r Result) Response() (text string, ok bool, err error) {
	var obj struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(r, &obj); err != nil {
		return "", false, fmt.Errorf("decoding engine result: %w", err)
	}
	if obj.Response == nil {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(obj.Response, &s); err == nil {
		return s, true, nil
	}
	return Result(obj.Response).String(), true, nil
}

// Error is a failure reported by the engine: a human-readable message plus the
// full structured error value.
type Error struct {
	Message string
	Detail  json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError reports a failure on the caller's side of the engine (a resource
// that cannot be read, unreadable engine output) as an Error whose detail is
// {"message": err.Error()}.
func WrapError(err error) *Error {
	if err == nil {
		return nil
	}
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr
	}
	detail, _ := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: err.Error()})
	return &Error{Message: err.Error(), Detail: detail, Err: err}
}

// NewError builds an Error from the engine's JSON error value, taking the
// message from its "message" field when present.
func NewError(detail json.RawMessage) *Error {
	var obj struct {
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(detail, &obj); err == nil {
		msg = obj.Message
	} else {
		var s string
		if json.Unmarshal(detail, &s) == nil {
			msg = s
		}
	}
	if msg == "" {
		msg = "contract engine error"
	}
	return &Error{Message: msg, Detail: detail}
}
