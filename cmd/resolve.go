package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ecommon "github.com/ensolve/ensolve/common"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve one or multiple ENS names to their addresses",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := ensEngine()
		if err != nil {
			fmt.Printf("%s\n", ecommon.AlertColor(err.Error()))
			return
		}
		for _, name := range args {
			name = strings.TrimSpace(name)
			stop := waitSpinner(fmt.Sprintf("resolving %s...", name))
			addr, err := engine.ResolveAddressSync(name, resolutionMode())
			stop()
			if err != nil {
				fmt.Printf("%s: %s\n", name, ecommon.AlertColor(err.Error()))
				continue
			}
			fmt.Printf("%s: %s\n", name, ecommon.InfoColor(addr.Hex()))
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
