package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var Holesky Network = NewHolesky()

type holesky struct{}

func NewHolesky() *holesky {
	return &holesky{}
}

func (self *holesky) GetName() string {
	return "holesky"
}

func (self *holesky) GetChainID() int64 {
	return 17000
}

func (self *holesky) GetAlternativeNames() []string {
	return []string{}
}

func (self *holesky) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *holesky) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (self *holesky) GetNodeVariableName() string {
	return "HOLESKY_NODE"
}

func (self *holesky) GetDefaultNodes() map[string]string {
	return map[string]string{
		"holesky-publicn": "https://ethereum-holesky-rpc.publicnode.com",
	}
}

func (self *holesky) GetENSRegistry() (common.Address, bool) {
	return ensRegistryAddress, true
}
