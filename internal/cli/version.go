package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/accordproject/ergorun/internal/build"
)

func newVersionCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Display version information",
		Long:    "Display version, commit, build date, and Go version information for ergorun",
		GroupID: GroupOther,
		Args:    cobra.NoArgs,
		Example: `  # Show version info
  ergorun version

  # Plain output (for scripts)
  ergorun version --plain`,
		Run: func(cmd *cobra.Command, args []string) {
			if plain {
				fmt.Fprintf(a.stdout, "ergorun %s\n", build.Version)
				for _, line := range build.Info()[1:] {
					fmt.Fprintln(a.stdout, line)
				}
				return
			}
			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			dim := color.New(color.Faint).SprintFunc()
			if build.IsDevBuild() {
				fmt.Fprintf(a.stdout, "%s %s %s\n", cyan("ergorun"), build.Version, dim("(development build)"))
			} else {
				fmt.Fprintf(a.stdout, "%s %s\n", cyan("ergorun"), build.Version)
			}
			for _, line := range build.Info()[1:] {
				fmt.Fprintf(a.stdout, "  %s\n", dim(line))
			}
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}
