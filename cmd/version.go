package cmd

import (
	"fmt"

	"github.com/emrekoc/gotrib/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotrib",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gotrib v%s\n", version.Version)
		fmt.Println("Tributary Load Distribution Tool")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
