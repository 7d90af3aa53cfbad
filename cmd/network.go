package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ecommon "github.com/ensolve/ensolve/common"
	"github.com/ensolve/ensolve/networks"
	"github.com/ensolve/ensolve/reader"
)

var networkCmd = &cobra.Command{
	Use:   "networks",
	Short: "Show supported networks and their ENS deployments",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		current := networks.CurrentNetwork()
		for _, n := range networks.GetSupportedNetworks() {
			marker := "  "
			if n.GetName() == current.GetName() {
				marker = "* "
			}
			registry, found := n.GetENSRegistry()
			if found {
				fmt.Printf("%s%s (chain id %d): registry %s\n",
					marker, n.GetName(), n.GetChainID(), ecommon.InfoColor(registry.Hex()))
			} else {
				fmt.Printf("%s%s (chain id %d): %s\n",
					marker, n.GetName(), n.GetChainID(), ecommon.AlertColor("no ENS deployment"))
			}
		}

		stop := waitSpinner(fmt.Sprintf("querying %s...", current.GetName()))
		block, err := reader.NewEthReaderGeneric(nodesFor(current)).CurrentBlock()
		stop()
		if err != nil {
			fmt.Printf("current block: %s\n", ecommon.AlertColor(err.Error()))
			return
		}
		fmt.Printf("current block on %s: %d\n", current.GetName(), block)
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
