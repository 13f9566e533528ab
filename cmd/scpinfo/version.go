package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/scpinfo/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "scpinfo %s\n", app.BuildVersion)
		fmt.Fprintf(out, "  Commit: %s\n", app.BuildCommit)
		fmt.Fprintf(out, "  Date:   %s\n", app.BuildDate)
	},
}
