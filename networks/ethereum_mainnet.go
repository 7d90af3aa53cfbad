package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// The ENS registry is deployed at the same address on mainnet and on the
// long-lived testnets.
var ensRegistryAddress = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

var EthereumMainnet Network = NewEthereumMainnet()

type ethereumMainnet struct{}

func NewEthereumMainnet() *ethereumMainnet {
	return &ethereumMainnet{}
}

func (self *ethereumMainnet) GetName() string {
	return "mainnet"
}

func (self *ethereumMainnet) GetChainID() int64 {
	return 1
}

func (self *ethereumMainnet) GetAlternativeNames() []string {
	return []string{"ethereum"}
}

func (self *ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *ethereumMainnet) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (self *ethereumMainnet) GetNodeVariableName() string {
	return "ETHEREUM_MAINNET_NODE"
}

func (self *ethereumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-llama":   "https://eth.llamarpc.com",
		"mainnet-publicn": "https://ethereum-rpc.publicnode.com",
	}
}

func (self *ethereumMainnet) GetENSRegistry() (common.Address, bool) {
	return ensRegistryAddress, true
}
