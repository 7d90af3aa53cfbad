package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var Matic Network = NewMatic()

type matic struct{}

func NewMatic() *matic {
	return &matic{}
}

func (self *matic) GetName() string {
	return "polygon"
}

func (self *matic) GetChainID() int64 {
	return 137
}

func (self *matic) GetAlternativeNames() []string {
	return []string{"matic"}
}

func (self *matic) GetNativeTokenSymbol() string {
	return "POL"
}

func (self *matic) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (self *matic) GetNodeVariableName() string {
	return "POLYGON_NODE"
}

func (self *matic) GetDefaultNodes() map[string]string {
	return map[string]string{
		"polygon-rpc": "https://polygon-rpc.com",
	}
}

// ENS is not deployed on Polygon.
func (self *matic) GetENSRegistry() (common.Address, bool) {
	return common.Address{}, false
}
