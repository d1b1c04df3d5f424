// ergorun - command-line front end for the Ergo contract engine

// Package cli provides the Cobra-based command line of ergorun: the four
// contract commands (execute, invoke, init, generateText), version, and the
// error reporting and exit codes shared by all of them.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/accordproject/ergorun/internal/cli/shared"
	"github.com/accordproject/ergorun/internal/config"
	"github.com/accordproject/ergorun/internal/engine"
	clierrors "github.com/accordproject/ergorun/internal/errors"
	"github.com/accordproject/ergorun/internal/progress"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupContract = shared.GroupContract
	GroupOther    = shared.GroupOther
)

// app holds what commands need from the outside world, so tests can swap the
// engine, the clock and the output streams.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	newEngine func(cfg *config.Configuration) engine.Engine
	now       func() time.Time
	terminal  func() progress.TerminalCapabilities
}

func newApp() *app {
	return &app{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newEngine: processEngine,
		now:       time.Now,
		terminal:  progress.DetectTerminalCapabilities,
	}
}

// processEngine runs the configured engine executable.
func processEngine(cfg *config.Configuration) engine.Engine {
	return &engine.Process{
		Cmd:     cfg.EngineCmd,
		Args:    cfg.EngineArgs,
		Timeout: cfg.TimeoutDuration(),
		Inline:  cfg.InlineResources,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ergorun",
		Short: "Run Ergo contracts from the command line",
		Long: `ergorun - command-line front end for the Ergo contract engine

Positional arguments are model (.cto) and logic (.ergo) files; any other
file is ignored. The contract engine executable is set with engine_cmd in
.ergorun.yaml or ERGORUN_ENGINE_CMD.`,
		Example: `  # Send two requests to a contract
  ergorun execute --contract contract.json --request r1.json r2.json model.cto logic.ergo

  # Invoke a single clause
  ergorun invoke --clauseName greet --contract contract.json --state state.json \
    --params params.json model.cto logic.ergo

  # Initialize contract state
  ergorun init --contract contract.json model.cto logic.ergo

  # Render contract text
  ergorun generateText --contract contract.json model.cto logic.ergo`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: GroupContract, Title: "Contract Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupOther, Title: "Other:"})
	rootCmd.SetHelpCommandGroupID(GroupOther)
	rootCmd.SetCompletionCommandGroupID(GroupOther)

	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
			"Run 'ergorun "+cmd.Name()+" --help' to see all options")
	})

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: .ergorun.{json,yaml,yml,toml})")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print the resolved inputs before calling the engine")

	for _, cmd := range contractCommands(a) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newDoctorCmd(a))

	return rootCmd
}

// Execute runs ergorun with the process arguments, reports any error on
// stderr, and returns it for ExitCode.
func Execute() error {
	return newApp().execute(os.Args[1:])
}

func (a *app) execute(args []string) error {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(gatherRequests(args, a.recognizer(args)))
	err := rootCmd.Execute()
	if err != nil {
		a.printError(err)
	}
	return err
}
