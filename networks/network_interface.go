package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Network interface {
	GetName() string
	GetChainID() int64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetBlockTime() time.Duration

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// GetENSRegistry returns the address of the ENS registry deployed on
	// this network. The second return is false on chains that have no ENS
	// deployment.
	GetENSRegistry() (common.Address, bool)
}
