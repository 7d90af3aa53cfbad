package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	ecommon "github.com/ensolve/ensolve/common"
	"github.com/ensolve/ensolve/config"
	"github.com/ensolve/ensolve/ens"
	"github.com/ensolve/ensolve/networks"
	"github.com/ensolve/ensolve/reader"
)

func nodesFor(network networks.Network) map[string]string {
	if config.NodeURL != "" {
		return map[string]string{"custom-node": config.NodeURL}
	}
	fromEnv := strings.Trim(os.Getenv(network.GetNodeVariableName()), " ")
	if fromEnv != "" {
		return map[string]string{"env-node": fromEnv}
	}
	return network.GetDefaultNodes()
}

func ensEngine() (*ens.Engine, error) {
	network := networks.CurrentNetwork()
	engine := ens.NewEngine(reader.NewEthReaderGeneric(nodesFor(network)), network)
	if config.Registry != "" {
		if !ecommon.IsAddress(config.Registry) {
			return nil, fmt.Errorf("--registry %q is not a valid address", config.Registry)
		}
		engine.SetRegistryOverride(ecommon.HexToAddress(config.Registry))
	}
	engine.SetMaxRedirects(config.MaxRedirects)
	return engine, nil
}

func resolutionMode() ens.ResolutionMode {
	if config.Offchain {
		return ens.AllowOffchainLookup
	}
	return ens.OnChainOnly
}

// waitSpinner starts an animated spinner with msg and returns a stop
// function. On non-terminal outputs the spinner is a no-op and only the
// message is printed once.
func waitSpinner(msg string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%s\n", msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond)
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
	}
}
