// Package cmd implements the highpoint CLI, grounded on
// cmd/recast/cmd/{root,build,config,infos,cli,utils}.go's cobra command
// triad and confirm-before-overwrite helper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when highpoint is called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "highpoint",
	Short: "find scenic viewpoints reachable by a short walk from a road",
	Long: `highpoint searches a digital elevation model and road network for
scenic viewpoints: local terrain maxima with a long, wide, unobstructed view
that can be reached by a short walk from a drivable road.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once by
// main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
