package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/goregion/sceneio"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a scene file",
	Long: `Create a scene file in YAML format, prefilled with a small example
(a square with a hole subtracted out of it).

If FILE is not provided, 'scene.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "scene.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		if err := sceneio.Save(path, sceneio.Default()); err != nil {
			check(err)
		}
		fmt.Printf("scene written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
