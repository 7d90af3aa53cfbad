package ens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	ecommon "github.com/ensolve/ensolve/common"
)

// Registry is bound to one deployed ENS registry contract and answers
// which resolver contract is responsible for a node.
type Registry struct {
	addr   common.Address
	reader ChainReader
}

func NewRegistry(addr common.Address, reader ChainReader) *Registry {
	return &Registry{
		addr:   addr,
		reader: reader,
	}
}

func (r *Registry) Address() common.Address {
	return r.addr
}

// ResolverAt returns the resolver contract address registered for node.
// The zero address means no resolver is registered for this exact node.
func (r *Registry) ResolverAt(node common.Hash) (common.Address, error) {
	a := GetRegistryABI()
	data, err := r.reader.ReadContractToBytes(
		-1, ecommon.ZERO_ADDRESS, r.addr.Hex(), a, "resolver", node,
	)
	if err != nil {
		return common.Address{}, err
	}
	out, err := a.Unpack("resolver", data)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	resolver, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: resolver() didn't return an address", ErrDecode)
	}
	return resolver, nil
}
