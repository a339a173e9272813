package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/goregion/sceneio"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info SCENE",
	Short: "show info about a scene file",
	Long: `Load a scene file and print its shape palette and pipeline without
running it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := sceneio.Load(args[0])
		check(err)

		fmt.Printf("%d shape(s):\n", len(sc.Shapes))
		for _, s := range sc.Shapes {
			fmt.Printf("  %s: (%d,%d)+(%dx%d)\n", s.Name, s.X, s.Y, s.W, s.H)
		}
		fmt.Printf("%d pipeline step(s):\n", len(sc.Pipeline))
		for i, step := range sc.Pipeline {
			fmt.Printf("  [%d] %s %s\n", i, step.Op, step.Shape)
		}
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
