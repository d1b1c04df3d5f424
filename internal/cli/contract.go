package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/accordproject/ergorun/internal/classify"
	"github.com/accordproject/ergorun/internal/command"
	"github.com/accordproject/ergorun/internal/config"
	"github.com/accordproject/ergorun/internal/dispatch"
	"github.com/accordproject/ergorun/internal/engine"
	clierrors "github.com/accordproject/ergorun/internal/errors"
	"github.com/accordproject/ergorun/internal/lifecycle"
	"github.com/accordproject/ergorun/internal/progress"
	"github.com/accordproject/ergorun/internal/report"
)

// contractCommands builds one cobra command per registered contract command.
func contractCommands(a *app) []*cobra.Command {
	specs := command.Specs()
	cmds := make([]*cobra.Command, 0, len(specs))
	for _, spec := range specs {
		cmds = append(cmds, newContractCmd(a, spec))
	}
	return cmds
}

func newContractCmd(a *app, spec command.Spec) *cobra.Command {
	cmd := &cobra.Command{
		Use:     string(spec.Name) + " [files...]",
		Short:   spec.Short,
		Long:    longHelp(spec),
		Example: "  " + spec.Usage,
		GroupID: GroupContract,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContract(cmd, spec, args)
		},
	}

	for _, opt := range spec.Options {
		usage := opt.Description
		if opt.Required {
			usage += " (required)"
		} else if opt.Default != "" {
			usage += " (default: " + opt.Default + ")"
		}
		if opt.Array {
			cmd.Flags().StringArray(opt.Name, nil, usage+"; takes one or more files")
			continue
		}
		cmd.Flags().String(opt.Name, "", usage)
	}
	return cmd
}

func longHelp(spec command.Spec) string {
	var b strings.Builder
	b.WriteString(spec.Short)
	b.WriteString("\n\nRequired options: --")
	b.WriteString(strings.Join(spec.Required(), ", --"))
	if optional := spec.Optional(); len(optional) > 0 {
		b.WriteString("\nOptional options: --")
		b.WriteString(strings.Join(optional, ", --"))
	}
	b.WriteString("\n\nModel (.cto) and logic (.ergo) files are given as positional arguments;\nother files are ignored.")
	return b.String()
}

// runContract loads the config, wires a dispatcher and reports the result.
func (a *app) runContract(cmd *cobra.Command, spec command.Spec, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return configError(configPath, err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	verbose = verbose || cfg.Verbose
	logger := newLogger(a.stderr, verbose)

	d := a.newDispatcher(cfg, logger, verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := a.dispatch(ctx, d, spec.Name, cmd.Flags(), args)
	if err != nil {
		return engineError(cfg, err)
	}

	if err := report.New(a.stdout, a.stderr).Success(spec.Name, result); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "failed to print result")
	}
	return nil
}

func (a *app) newDispatcher(cfg *config.Configuration, logger *log.Logger, verbose bool) *dispatch.Dispatcher {
	d := dispatch.New(a.newEngine(cfg))
	d.Classify = cfg.Extensions().Func()
	if cfg.ExpandGlobs {
		d.Expand = classify.Expand
	}
	if a.now != nil {
		d.Now = a.now
	}
	d.Logger = logger

	var handlers lifecycle.Handlers
	if verbose {
		handlers = append(handlers, dispatch.TimingLogger{Logger: logger})
	}
	if cfg.ShowProgress && a.terminal != nil {
		ind := progress.NewIndicator(a.terminal(), a.stderr)
		ind.Summary = verbose
		handlers = append(handlers, ind)
	}
	d.Handler = handlers
	return d
}

func (a *app) dispatch(ctx context.Context, d *dispatch.Dispatcher, name command.Name, flags *pflag.FlagSet, files []string) (engine.Result, error) {
	switch name {
	case command.Execute:
		return d.Execute(ctx, command.ExecuteOptions{
			Contract:    stringOpt(flags, command.OptContract),
			State:       stringOpt(flags, command.OptState),
			CurrentTime: stringOpt(flags, command.OptCurrentTime),
			Request:     arrayOpt(flags, command.OptRequest),
			Files:       files,
		})
	case command.Invoke:
		return d.Invoke(ctx, command.InvokeOptions{
			ClauseName:  stringOpt(flags, command.OptClauseName),
			Contract:    stringOpt(flags, command.OptContract),
			State:       stringOpt(flags, command.OptState),
			CurrentTime: stringOpt(flags, command.OptCurrentTime),
			Params:      stringOpt(flags, command.OptParams),
			Files:       files,
		})
	case command.Init:
		return d.Init(ctx, command.InitOptions{
			Contract:    stringOpt(flags, command.OptContract),
			CurrentTime: stringOpt(flags, command.OptCurrentTime),
			Params:      stringOpt(flags, command.OptParams),
			Files:       files,
		})
	case command.GenerateText:
		return d.GenerateText(ctx, command.GenerateTextOptions{
			Contract:    stringOpt(flags, command.OptContract),
			CurrentTime: stringOpt(flags, command.OptCurrentTime),
			Files:       files,
		})
	}
	return nil, fmt.Errorf("unknown command %q", name)
}

// stringOpt returns nil for an option that was not given.
func stringOpt(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// arrayOpt returns nil for an array option that was not given.
func arrayOpt(flags *pflag.FlagSet, name string) []string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetStringArray(name)
	if err != nil {
		return nil
	}
	return v
}

// newLogger writes diagnostics to w. Only warnings and errors are shown
// unless verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "ergorun",
		Level:  level,
	})
}

func configError(path string, err error) error {
	if errors.Is(err, config.ErrNotFound) {
		e := clierrors.ConfigFileNotFound(path)
		e.Err = err
		return e
	}
	if path == "" {
		path = "configuration"
	}
	return clierrors.ConfigParseError(path, err)
}

// engineError turns engine start-up failures into CLI errors. Usage errors
// pass through; every other failure is reported like an engine error.
func engineError(cfg *config.Configuration, err error) error {
	var timeout *engine.TimeoutError
	switch {
	case errors.Is(err, engine.ErrNotFound):
		e := clierrors.EngineNotFound(cfg.EngineCmd)
		e.Err = err
		return e
	case errors.As(err, &timeout):
		e := clierrors.EngineTimeout(timeout.Timeout, timeout.Command)
		e.Err = err
		return e
	case clierrors.IsCLIError(err):
		return err
	}
	return engine.WrapError(err)
}
