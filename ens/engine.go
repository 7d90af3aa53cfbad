package ens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	ecommon "github.com/ensolve/ensolve/common"
	"github.com/ensolve/ensolve/networks"
)

var DEFAULT_MAX_REDIRECTS int = 4

// Engine is the resolution facade. One engine owns one resolver cache;
// resolution calls run as independent goroutines and only share that
// cache. Construct it once and reuse it across calls.
type Engine struct {
	reader           ChainReader
	network          networks.Network
	registryOverride *common.Address
	maxRedirects     int
	cache            *resolverCache
}

// NewEngine returns an engine resolving against the ENS registry deployed
// on network. network may be nil when a registry override is set; with
// neither, every call fails with ErrNoNetwork.
func NewEngine(reader ChainReader, network networks.Network) *Engine {
	return &Engine{
		reader:       reader,
		network:      network,
		maxRedirects: DEFAULT_MAX_REDIRECTS,
		cache:        newResolverCache(),
	}
}

// SetRegistryOverride makes the engine query addr instead of the current
// network's default registry.
func (e *Engine) SetRegistryOverride(addr common.Address) {
	e.registryOverride = &addr
}

// SetMaxRedirects bounds the number of offchain redirect hops permitted
// per record retrieval under AllowOffchainLookup mode.
func (e *Engine) SetMaxRedirects(n int) {
	e.maxRedirects = n
}

func (e *Engine) registryAddress() (common.Address, error) {
	if e.registryOverride != nil {
		return *e.registryOverride, nil
	}
	if e.network == nil {
		return common.Address{}, ErrNoNetwork
	}
	registry, found := e.network.GetENSRegistry()
	if !found {
		return common.Address{}, fmt.Errorf(
			"%w: no ENS registry on %s", ErrNoNetwork, e.network.GetName(),
		)
	}
	return registry, nil
}

// ResolveAddress resolves name to its address record and delivers the
// result to fn. fn is invoked exactly once, from a separate goroutine.
func (e *Engine) ResolveAddress(name string, mode ResolutionMode, fn func(common.Address, error)) {
	go func() {
		fn(e.resolveAddress(name, mode))
	}()
}

// ResolveName reverse-resolves addr to its primary name and delivers the
// result to fn. fn is invoked exactly once, from a separate goroutine.
// The claimed name is not forward-verified.
func (e *Engine) ResolveName(addr common.Address, mode ResolutionMode, fn func(string, error)) {
	go func() {
		fn(e.resolveName(addr, mode))
	}()
}

type resolveAddressResult struct {
	Addr  common.Address
	Error error
}

// ResolveAddressSync is ResolveAddress in blocking form.
func (e *Engine) ResolveAddressSync(name string, mode ResolutionMode) (common.Address, error) {
	resCh := make(chan resolveAddressResult, 1)
	e.ResolveAddress(name, mode, func(addr common.Address, err error) {
		resCh <- resolveAddressResult{
			Addr:  addr,
			Error: err,
		}
	})
	result := <-resCh
	return result.Addr, result.Error
}

type resolveNameResult struct {
	Name  string
	Error error
}

// ResolveNameSync is ResolveName in blocking form.
func (e *Engine) ResolveNameSync(addr common.Address, mode ResolutionMode) (string, error) {
	resCh := make(chan resolveNameResult, 1)
	e.ResolveName(addr, mode, func(name string, err error) {
		resCh <- resolveNameResult{
			Name:  name,
			Error: err,
		}
	})
	result := <-resCh
	return result.Name, result.Error
}

func (e *Engine) resolveAddress(name string, mode ResolutionMode) (common.Address, error) {
	if name == "" {
		return common.Address{}, fmt.Errorf("%w: empty name", ErrInvalidInput)
	}
	registryAddr, err := e.registryAddress()
	if err != nil {
		return common.Address{}, err
	}

	policy := derivePolicy(mode, e.maxRedirects)
	registry := NewRegistry(registryAddr, e.reader)
	resolver, err := e.resolverByName(registry, name, policy)
	if err != nil {
		return common.Address{}, coerceErr(err)
	}

	addr, err := resolver.Addr(name)
	if err != nil {
		return common.Address{}, coerceErr(err)
	}
	if ecommon.IsZeroAddress(addr) {
		return common.Address{}, fmt.Errorf("%w: %q has no address record", ErrUnknownName, name)
	}
	return addr, nil
}

func (e *Engine) resolveName(addr common.Address, mode ResolutionMode) (string, error) {
	registryAddr, err := e.registryAddress()
	if err != nil {
		return "", err
	}

	policy := derivePolicy(mode, e.maxRedirects)
	registry := NewRegistry(registryAddr, e.reader)
	resolver, err := e.resolverByAddress(registry, addr, policy)
	if err != nil {
		return "", coerceErr(err)
	}

	name, err := resolver.Name(ReverseNode(addr))
	if err != nil {
		return "", coerceErr(err)
	}
	if name == "" {
		return "", fmt.Errorf("%w: no primary name for %s", ErrUnknownName, addr.Hex())
	}
	return name, nil
}
