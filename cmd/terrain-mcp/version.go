package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "terrain-mcp %s\n", Version)
		fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
	},
}
