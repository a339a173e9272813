package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/goregion/sceneio"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run SCENE",
	Short: "run a scene and print the resulting region",
	Long: `Load a scene file, replay its pipeline of set operations and print
the resulting region's extent, then its rectangles, one per line, y-x sorted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := sceneio.Load(args[0])
		check(err)

		r, err := sceneio.Build(sc)
		check(err)

		fmt.Printf("extent: %v\n", r.Extent())
		for i, rect := range r.Rects() {
			fmt.Printf("  [%d] %v\n", i, rect)
		}
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
}
