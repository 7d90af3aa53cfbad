package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var BSCMainnet Network = NewBSCMainnet()

type bscMainnet struct{}

func NewBSCMainnet() *bscMainnet {
	return &bscMainnet{}
}

func (self *bscMainnet) GetName() string {
	return "bsc"
}

func (self *bscMainnet) GetChainID() int64 {
	return 56
}

func (self *bscMainnet) GetAlternativeNames() []string {
	return []string{"binance"}
}

func (self *bscMainnet) GetNativeTokenSymbol() string {
	return "BNB"
}

func (self *bscMainnet) GetBlockTime() time.Duration {
	return 3 * time.Second
}

func (self *bscMainnet) GetNodeVariableName() string {
	return "BSC_MAINNET_NODE"
}

func (self *bscMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"binance": "https://bsc-dataseed.binance.org",
	}
}

// ENS is not deployed on BSC.
func (self *bscMainnet) GetENSRegistry() (common.Address, bool) {
	return common.Address{}, false
}
