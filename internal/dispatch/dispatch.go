// Package dispatch turns validated command options into exactly one call on
// the contract engine.
//
// Every command follows the same steps: validate the typed options, expand
// and classify the positional files, wrap the option values as resource
// references, emit the verbose diagnostic, then make a single engine call
// wrapped by the lifecycle handler.
package dispatch

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/accordproject/ergorun/internal/classify"
	"github.com/accordproject/ergorun/internal/command"
	"github.com/accordproject/ergorun/internal/engine"
	"github.com/accordproject/ergorun/internal/lifecycle"
	"github.com/accordproject/ergorun/internal/resource"
)

// Dispatcher routes commands to an Engine.
type Dispatcher struct {
	Engine engine.Engine

	// Classify partitions positional files. Defaults to classify.Classify.
	Classify classify.Func
	// Expand rewrites positional arguments before classification (glob
	// expansion). Nil leaves them untouched.
	Expand func(args []string) []string
	// Now supplies the default current time. Defaults to time.Now.
	Now func() time.Time
	// Logger receives the verbose diagnostic at Info level.
	Logger *log.Logger
	// Handler is notified around the engine call.
	Handler lifecycle.Handler
}

// New returns a Dispatcher for eng with default classifier and clock.
func New(eng engine.Engine) *Dispatcher {
	return &Dispatcher{
		Engine:   eng,
		Classify: classify.Classify,
		Now:      time.Now,
	}
}

// Execute sends one or more requests to a contract.
func (d *Dispatcher) Execute(ctx context.Context, opts command.ExecuteOptions) (engine.Result, error) {
	if err := command.Validate(command.MustLookup(command.Execute), opts); err != nil {
		return nil, err
	}
	bundle := d.bundle(opts.Files)

	req := engine.ExecuteRequest{
		Logic:       bundle.LogicPaths,
		Schemas:     bundle.SchemaPaths,
		Contract:    resource.File(*opts.Contract),
		CurrentTime: d.currentTime(opts.CurrentTime),
		Requests:    resource.Files(opts.Request),
	}
	if opts.State != nil {
		state := resource.File(*opts.State)
		req.State = &state
	}

	d.logger().Info("execute",
		"logic", req.Logic,
		"schemas", req.Schemas,
		"contract", req.Contract,
		"state", stateField(req.State),
		"requests", req.Requests,
		"currentTime", req.CurrentTime,
	)

	return d.call(ctx, command.Execute, func(ctx context.Context) (engine.Result, error) {
		return d.Engine.Execute(ctx, req)
	})
}

// Invoke calls a single clause of a contract.
func (d *Dispatcher) Invoke(ctx context.Context, opts command.InvokeOptions) (engine.Result, error) {
	if err := command.Validate(command.MustLookup(command.Invoke), opts); err != nil {
		return nil, err
	}
	bundle := d.bundle(opts.Files)

	req := engine.InvokeRequest{
		Logic:       bundle.LogicPaths,
		Schemas:     bundle.SchemaPaths,
		ClauseName:  *opts.ClauseName,
		Contract:    resource.File(*opts.Contract),
		State:       resource.File(*opts.State),
		CurrentTime: d.currentTime(opts.CurrentTime),
		Params:      resource.File(*opts.Params),
	}

	d.logger().Info("invoke",
		"logic", req.Logic,
		"schemas", req.Schemas,
		"clause", req.ClauseName,
		"contract", req.Contract,
		"state", req.State,
		"params", req.Params,
		"currentTime", req.CurrentTime,
	)

	return d.call(ctx, command.Invoke, func(ctx context.Context) (engine.Result, error) {
		return d.Engine.Invoke(ctx, req)
	})
}

// Init initializes the state of a contract. Without --params the engine
// receives an inline empty object.
func (d *Dispatcher) Init(ctx context.Context, opts command.InitOptions) (engine.Result, error) {
	if err := command.Validate(command.MustLookup(command.Init), opts); err != nil {
		return nil, err
	}
	bundle := d.bundle(opts.Files)

	params := resource.Empty()
	if opts.Params != nil {
		params = resource.File(*opts.Params)
	}
	req := engine.InitRequest{
		Logic:       bundle.LogicPaths,
		Schemas:     bundle.SchemaPaths,
		Contract:    resource.File(*opts.Contract),
		CurrentTime: d.currentTime(opts.CurrentTime),
		Params:      params,
	}

	d.logger().Info("init",
		"logic", req.Logic,
		"schemas", req.Schemas,
		"contract", req.Contract,
		"params", req.Params,
		"currentTime", req.CurrentTime,
	)

	return d.call(ctx, command.Init, func(ctx context.Context) (engine.Result, error) {
		return d.Engine.Init(ctx, req)
	})
}

// GenerateText renders the natural-language text of a contract.
func (d *Dispatcher) GenerateText(ctx context.Context, opts command.GenerateTextOptions) (engine.Result, error) {
	if err := command.Validate(command.MustLookup(command.GenerateText), opts); err != nil {
		return nil, err
	}
	bundle := d.bundle(opts.Files)

	req := engine.GenerateTextRequest{
		Logic:       bundle.LogicPaths,
		Schemas:     bundle.SchemaPaths,
		Contract:    resource.File(*opts.Contract),
		CurrentTime: d.currentTime(opts.CurrentTime),
	}

	d.logger().Info("generateText",
		"logic", req.Logic,
		"schemas", req.Schemas,
		"contract", req.Contract,
		"currentTime", req.CurrentTime,
	)

	return d.call(ctx, command.GenerateText, func(ctx context.Context) (engine.Result, error) {
		return d.Engine.GenerateText(ctx, req)
	})
}

// bundle expands and classifies the positional files. Both slices are
// non-nil so they encode as JSON arrays.
func (d *Dispatcher) bundle(files []string) classify.Bundle {
	if d.Expand != nil {
		files = d.Expand(files)
	}

	classifier := d.Classify
	if classifier == nil {
		classifier = classify.Classify
	}
	b := classifier(files)
	if b.SchemaPaths == nil {
		b.SchemaPaths = []string{}
	}
	if b.LogicPaths == nil {
		b.LogicPaths = []string{}
	}
	return b
}

// currentTime returns the caller-supplied time, else the clock read now.
func (d *Dispatcher) currentTime(given *string) string {
	if given != nil {
		return *given
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(time.RFC3339)
}

func (d *Dispatcher) call(ctx context.Context, name command.Name, fn func(context.Context) (engine.Result, error)) (engine.Result, error) {
	var result engine.Result
	err := lifecycle.RunWithContext(ctx, d.Handler, string(name), func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

var discard = log.New(io.Discard)

func (d *Dispatcher) logger() *log.Logger {
	if d.Logger == nil {
		return discard
	}
	return d.Logger
}

func stateField(ref *resource.Ref) any {
	if ref == nil {
		return "none"
	}
	return *ref
}
