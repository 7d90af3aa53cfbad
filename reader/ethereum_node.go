package reader

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

type EthereumNode interface {
	NodeName() string
	NodeURL() string
	ReadContractToBytes(
		atBlock int64,
		from string,
		caddr string,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
	EthCall(from string, to string, data []byte) ([]byte, error)
	CurrentBlock() (uint64, error)
}
