package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/accordproject/ergorun/internal/resource"
)

// Process runs the engine as a subprocess: "Cmd Args... <operation>". The
// request is written to stdin as JSON; stdout must hold a single JSON object,
// either {"result": ...} or {"error": {...}}.
type Process struct {
	Cmd     string
	Args    []string
	Timeout time.Duration // 0 = no timeout

	// Inline sends file references to the engine as content references.
	Inline bool
	// ReadFile reads files for Inline. Defaults to os.ReadFile.
	ReadFile func(string) ([]byte, error)
}

var _ Engine = (*Process)(nil)

// Execute implements Engine.
func (p *Process) Execute(ctx context.Context, req ExecuteRequest) (Result, error) {
	if p.Inline {
		var err error
		if req.Contract, err = p.inline(req.Contract); err != nil {
			return nil, err
		}
		if req.State != nil {
			state, err := p.inline(*req.State)
			if err != nil {
				return nil, err
			}
			req.State = &state
		}
		requests := make([]resource.Ref, len(req.Requests))
		for i, r := range req.Requests {
			if requests[i], err = p.inline(r); err != nil {
				return nil, err
			}
		}
		req.Requests = requests
	}
	return p.call(ctx, OpExecute, req)
}

// Invoke implements Engine.
func (p *Process) Invoke(ctx context.Context, req InvokeRequest) (Result, error) {
	if p.Inline {
		var err error
		if req.Contract, err = p.inline(req.Contract); err != nil {
			return nil, err
		}
		if req.State, err = p.inline(req.State); err != nil {
			return nil, err
		}
		if req.Params, err = p.inline(req.Params); err != nil {
			return nil, err
		}
	}
	return p.call(ctx, OpInvoke, req)
}

// Init implements Engine.
func (p *Process) Init(ctx context.Context, req InitRequest) (Result, error) {
	if p.Inline {
		var err error
		if req.Contract, err = p.inline(req.Contract); err != nil {
			return nil, err
		}
		if req.Params, err = p.inline(req.Params); err != nil {
			return nil, err
		}
	}
	return p.call(ctx, OpInit, req)
}

// GenerateText implements Engine.
func (p *Process) GenerateText(ctx context.Context, req GenerateTextRequest) (Result, error) {
	if p.Inline {
		var err error
		if req.Contract, err = p.inline(req.Contract); err != nil {
			return nil, err
		}
	}
	return p.call(ctx, OpGenerateText, req)
}

// FormatCommand returns a human-readable command line for display and error messages
func (p *Process) FormatCommand(op Operation) string {
	parts := append([]string{p.Cmd}, p.Args...)
	return strings.Join(append(parts, string(op)), " ")
}

func (p *Process) inline(ref resource.Ref) (resource.Ref, error) {
	inlined, err := ref.Inline(p.ReadFile)
	if err != nil {
		return resource.Ref{}, WrapError(err)
	}
	return inlined, nil
}

const waitDelay = time.Second

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

func (p *Process) call(ctx context.Context, op Operation, payload any) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, WrapError(fmt.Errorf("encoding %s request: %w", op, err))
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(p.Args)+1)
	args = append(args, p.Args...)
	args = append(args, string(op))

	cmd := exec.CommandContext(ctx, p.Cmd, args...)
	cmd.Env = os.Environ()
	// Children of the engine may keep stdout open after it is killed.
	cmd.WaitDelay = waitDelay
	cmd.Stdin = bytes.NewReader(body)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, NewTimeoutError(p.Timeout, p.FormatCommand(op))
	}
	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p.Cmd)
	}

	var env envelope
	decodeErr := json.NewDecoder(&stdout).Decode(&env)
	if decodeErr == nil && len(env.Error) > 0 && string(env.Error) != "null" {
		return nil, NewError(env.Error)
	}

	if runErr != nil {
		return nil, exitFailure(runErr, stderr.String())
	}
	if decodeErr != nil {
		return nil, WrapError(fmt.Errorf("contract engine returned invalid output for %s: %w", op, decodeErr))
	}
	if env.Result == nil {
		return Result("null"), nil
	}
	return Result(env.Result), nil
}

// exitFailure turns a failed engine run without an error document into an
// Error carrying the exit status and stderr.
func exitFailure(runErr error, stderr string) *Error {
	detail := struct {
		Message  string `json:"message"`
		ExitCode int    `json:"exitCode"`
		Stderr   string `json:"stderr,omitempty"`
	}{
		Message:  "contract engine failed: " + runErr.Error(),
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr),
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		detail.ExitCode = exitErr.ExitCode()
	}
	data, _ := json.Marshal(detail)
	return &Error{Message: detail.Message, Detail: data}
}
