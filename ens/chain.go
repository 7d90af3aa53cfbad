package ens

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ChainReader is the chain client capability the engine consumes:
// read-only contract calls at the latest block. *reader.EthReader
// satisfies it; tests supply fakes.
type ChainReader interface {
	ReadContractToBytes(
		atBlock int64,
		from string,
		caddr string,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
	EthCall(from string, to string, data []byte) ([]byte, error)
}
