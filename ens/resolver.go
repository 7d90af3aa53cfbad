package ens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	ecommon "github.com/ensolve/ensolve/common"
)

// Resolver is a handle to one resolver contract, bound to the execution
// policy of the call that discovered it. The wildcard flag is set when
// the handle was found through ENSIP-10 fallback at a parent domain; its
// record queries then go through resolve(bytes,bytes) addressed with the
// originally requested name.
type Resolver struct {
	addr     common.Address
	reader   ChainReader
	policy   CallPolicy
	wildcard bool
}

func newResolver(addr common.Address, reader ChainReader, policy CallPolicy, wildcard bool) *Resolver {
	return &Resolver{
		addr:     addr,
		reader:   reader,
		policy:   policy,
		wildcard: wildcard,
	}
}

func (r *Resolver) Address() common.Address {
	return r.addr
}

func (r *Resolver) Wildcard() bool {
	return r.wildcard
}

// Addr returns the address record for name. The zero address means the
// resolver holds no address record for it.
func (r *Resolver) Addr(name string) (common.Address, error) {
	a := GetResolverABI()
	node, err := NameHash(name)
	if err != nil {
		return common.Address{}, err
	}
	inner, err := a.Pack("addr", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	ret, err := r.records(name, inner)
	if err != nil {
		return common.Address{}, err
	}
	out, err := a.Unpack("addr", ret)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: addr() didn't return an address", ErrDecode)
	}
	return addr, nil
}

// Name returns the name record for node. Reverse resolution passes the
// reverse registrar node of the queried address here.
func (r *Resolver) Name(node common.Hash) (string, error) {
	a := GetResolverABI()
	calldata, err := a.Pack("name", node)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDecode, err)
	}
	ret, err := r.call(calldata)
	if err != nil {
		return "", err
	}
	out, err := a.Unpack("name", ret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDecode, err)
	}
	name, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: name() didn't return a string", ErrDecode)
	}
	return name, nil
}

// records executes the inner record query, routed through ENSIP-10
// resolve(bytes,bytes) when this handle was discovered at a parent of the
// queried name.
func (r *Resolver) records(name string, inner []byte) ([]byte, error) {
	if !r.wildcard {
		return r.call(inner)
	}

	a := GetResolverABI()
	dns, err := DNSEncode(name)
	if err != nil {
		return nil, err
	}
	calldata, err := a.Pack("resolve", dns, inner)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	ret, err := r.call(calldata)
	if err != nil {
		return nil, err
	}
	out, err := a.Unpack("resolve", ret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	wrapped, ok := out[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: resolve() didn't return bytes", ErrDecode)
	}
	return wrapped, nil
}

// call executes calldata against the resolver contract, following
// EIP-3668 offchain redirects when the policy allows. Each OffchainLookup
// revert consumes one redirect hop.
func (r *Resolver) call(data []byte) ([]byte, error) {
	calldata := data
	for hops := 0; ; hops++ {
		ret, err := r.reader.EthCall(ecommon.ZERO_ADDRESS, r.addr.Hex(), calldata)
		if err == nil {
			return ret, nil
		}
		lookup, ok := decodeOffchainLookupError(err)
		if !ok {
			// a plain execution failure, nothing to follow
			return nil, err
		}
		if !r.policy.offchainAllowed {
			if r.policy.failOnExecutionError {
				return nil, fmt.Errorf(
					"resolver %s requires an offchain lookup, which %s mode forbids",
					r.addr.Hex(), OnChainOnly,
				)
			}
			// surface the redirect revert as-is
			return nil, err
		}
		if hops >= r.policy.maxRedirects {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyRedirections, r.policy.maxRedirects)
		}
		if lookup.sender != r.addr {
			return nil, fmt.Errorf(
				"%w: offchain lookup sender %s is not the resolver",
				ErrDecode, lookup.sender.Hex(),
			)
		}
		response, err := fetchGateway(lookup)
		if err != nil {
			return nil, err
		}
		calldata, err = callbackCalldata(lookup, response)
		if err != nil {
			return nil, err
		}
	}
}
