package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accordproject/ergorun/internal/health"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration and the contract engine",
		Long: `Run health checks to verify that ergorun can reach a contract engine.

This command checks that:
  - the configuration loads and validates
  - the configured engine_cmd is found in PATH

Each check will display a ✓ if passed or ✗ with an error message if failed.`,
		GroupID: GroupOther,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			report := health.RunHealthChecks(configPath)
			fmt.Fprint(a.stdout, health.FormatReport(report))
			if !report.Passed {
				return NewExitError(ExitMissingDependencies)
			}
			return nil
		},
	}
}
