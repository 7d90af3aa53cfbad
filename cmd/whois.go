package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ecommon "github.com/ensolve/ensolve/common"
)

// whoisCmd looks up the primary ENS name of addresses
var whoisCmd = &cobra.Command{
	Use:   "whois",
	Short: "Show the primary ENS name of one or multiple addresses",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		para := strings.Join(args, " ")
		addresses := ecommon.ScanForAddresses(para)
		if len(addresses) == 0 {
			fmt.Printf("Couldn't find any addresses in the params\n")
			return
		}
		engine, err := ensEngine()
		if err != nil {
			fmt.Printf("%s\n", ecommon.AlertColor(err.Error()))
			return
		}
		for _, address := range addresses {
			stop := waitSpinner(fmt.Sprintf("looking up %s...", address))
			name, err := engine.ResolveNameSync(ecommon.HexToAddress(address), resolutionMode())
			stop()
			if err != nil {
				fmt.Printf("%s: %s\n", address, ecommon.NameWithColor(""))
				continue
			}
			fmt.Printf("%s: %s\n", address, ecommon.NameWithColor(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(whoisCmd)
}
