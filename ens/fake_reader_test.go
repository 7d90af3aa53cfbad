package ens

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// fakeReader is an in-memory chain: a registry resolver table served via
// ReadContractToBytes and a caller-supplied handler for resolver calls.
type fakeReader struct {
	mu            sync.Mutex
	resolvers     map[common.Hash]common.Address
	registryErr   error
	registryCalls []common.Hash
	ethCall       func(to string, data []byte) ([]byte, error)
	ethCalls      int
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		resolvers: map[common.Hash]common.Address{},
	}
}

func (f *fakeReader) setResolver(name string, resolver common.Address) {
	node, err := NameHash(name)
	if err != nil {
		panic(err)
	}
	f.resolvers[node] = resolver
}

func (f *fakeReader) setReverseResolver(addr common.Address, resolver common.Address) {
	f.resolvers[ReverseNode(addr)] = resolver
}

func (f *fakeReader) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.registryCalls) + f.ethCalls
}

func (f *fakeReader) ReadContractToBytes(
	atBlock int64,
	from string,
	caddr string,
	a *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if method != "resolver" {
		return nil, fmt.Errorf("unexpected registry method %q", method)
	}
	node, ok := args[0].(common.Hash)
	if !ok {
		return nil, fmt.Errorf("unexpected registry arg %v", args[0])
	}
	f.registryCalls = append(f.registryCalls, node)
	if f.registryErr != nil {
		return nil, f.registryErr
	}
	return a.Methods["resolver"].Outputs.Pack(f.resolvers[node])
}

func (f *fakeReader) EthCall(from string, to string, data []byte) ([]byte, error) {
	f.mu.Lock()
	f.ethCalls++
	handler := f.ethCall
	f.mu.Unlock()
	if handler == nil {
		return nil, fmt.Errorf("no eth call handler configured")
	}
	return handler(to, data)
}

// revertError mimics the rpc.DataError an eth_call revert produces.
type revertError struct {
	data []byte
}

func (e *revertError) Error() string {
	return "execution reverted"
}

func (e *revertError) ErrorData() interface{} {
	return hexutil.Encode(e.data)
}

func offchainRevert(sender common.Address, urls []string, callData []byte, callbackFn [4]byte, extraData []byte) error {
	packed, err := offchainLookupArgs.Pack(sender, urls, callData, callbackFn, extraData)
	if err != nil {
		panic(err)
	}
	return &revertError{data: append(offchainLookupSelector[:], packed...)}
}

// packAddr encodes an addr(bytes32) style address return.
func packAddr(addr common.Address) []byte {
	out, err := GetResolverABI().Methods["addr"].Outputs.Pack(addr)
	if err != nil {
		panic(err)
	}
	return out
}

// packName encodes a name(bytes32) style string return.
func packName(name string) []byte {
	out, err := GetResolverABI().Methods["name"].Outputs.Pack(name)
	if err != nil {
		panic(err)
	}
	return out
}
