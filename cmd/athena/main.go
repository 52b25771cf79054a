package main

import (
	"fmt"
	"os"

	"github.com/roach88/athena/internal/cli"
)

func main() {
	// Subcommands silence cobra's own error printing, so failures are
	// reported exactly once here, with their exit code preserved.
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
