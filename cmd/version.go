package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const VERSION = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ensolve",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ensolve v%s\n", VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
