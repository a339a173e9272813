package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "regioncli",
	Short: "build and inspect 2-D integer regions",
	Long: `regioncli is the command-line companion to goregion:
	- scaffold a scene file describing named rectangles and a set-operation
	  pipeline (YAML),
	- run a scene and print the resulting region,
	- show info about a scene file without running it.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
