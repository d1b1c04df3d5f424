// ergorun - command-line front end for the Ergo contract engine

package main

import (
	"os"

	"github.com/accordproject/ergorun/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
