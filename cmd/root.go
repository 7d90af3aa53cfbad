package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ensolve/ensolve/config"
	"github.com/ensolve/ensolve/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ensolve",
	Short: "Resolve ENS names to addresses and addresses to names",
	Long: `Ensolve is a command line tool to resolve ENS names to ethereum
addresses and to look up the primary ENS name of an address.

It talks directly to the ENS registry and resolver contracts on chain,
follows ENSIP-10 wildcard delegation for subdomains and can follow
EIP-3668 offchain lookup gateways when --offchain is given.

By default, ensolve works against ethereum mainnet using public RPC
nodes. You can point it at your own node with --node or the per-network
env var (e.g. ETHEREUM_MAINNET_NODE for mainnet), and at a custom
registry deployment with --registry.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		networks.SetNetwork(config.Network)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet",
		fmt.Sprintf("ethereum network. Valid values: %v.", networks.GetSupportedNetworkNames()))
	rootCmd.PersistentFlags().StringVarP(&config.NodeURL, "node", "n", "",
		"custom RPC node URL. When set, it replaces the network's default nodes.")
	rootCmd.PersistentFlags().StringVarP(&config.Registry, "registry", "r", "",
		"custom ENS registry contract address. When set, it replaces the network's default registry.")
	rootCmd.PersistentFlags().BoolVar(&config.Offchain, "offchain", false,
		"follow EIP-3668 offchain lookup gateways when a resolver requires them.")
	rootCmd.PersistentFlags().IntVar(&config.MaxRedirects, "max-redirects", 4,
		"maximum offchain gateway redirects per lookup. Only relevant with --offchain.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
