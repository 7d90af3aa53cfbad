package ens

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	ecommon "github.com/ensolve/ensolve/common"
)

// resolverByAddress discovers the resolver responsible for the reverse
// record of addr. Any registry failure, and the absence of a reverse
// resolver, surface as ErrUnknownName.
func (e *Engine) resolverByAddress(registry *Registry, addr common.Address, policy CallPolicy) (*Resolver, error) {
	resolverAddr, err := registry.ResolverAt(ReverseNode(addr))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownName, err)
	}
	if ecommon.IsZeroAddress(resolverAddr) {
		return nil, fmt.Errorf("%w: no reverse resolver for %s", ErrUnknownName, addr.Hex())
	}
	return e.cache.getOrCreate(resolverAddr, func() *Resolver {
		return newResolver(resolverAddr, e.reader, policy, false)
	}), nil
}

// resolverByName discovers the resolver responsible for name, walking the
// ENSIP-10 wildcard fallback chain: whenever the registry has no resolver
// for the current name, the leftmost label is dropped and the parent is
// tried, as long as at least two labels remain. A registry call failure
// stops the walk immediately; only a zero resolver address triggers
// fallback.
func (e *Engine) resolverByName(registry *Registry, name string, policy CallPolicy) (*Resolver, error) {
	current := name
	for {
		node, err := NameHash(current)
		if err != nil {
			return nil, err
		}
		resolverAddr, err := registry.ResolverAt(node)
		if err != nil {
			if isResolutionErr(err) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s", ErrUnknownName, err)
		}

		if !ecommon.IsZeroAddress(resolverAddr) {
			// fallback happened iff we are no longer at the full name;
			// the handle then has to address queries with the full name
			// through resolve(bytes,bytes)
			wildcard := current != name
			return e.cache.getOrCreate(resolverAddr, func() *Resolver {
				return newResolver(resolverAddr, e.reader, policy, wildcard)
			}), nil
		}

		parts := strings.SplitN(current, ".", 2)
		if len(parts) < 2 || strings.Count(parts[1], ".") < 1 {
			// fewer than 2 labels would remain after dropping the
			// leftmost one: the chain is exhausted
			return nil, fmt.Errorf("%w: no resolver found for %q", ErrUnknownName, name)
		}
		current = parts[1]
	}
}
