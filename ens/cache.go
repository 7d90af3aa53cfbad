package ens

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// resolverCache maps resolver contract addresses to their constructed
// handles. Two different names served by the same resolver contract share
// one handle. Entries are never evicted; the cache lives and dies with
// the owning engine.
type resolverCache struct {
	mu      sync.RWMutex
	handles map[common.Address]*Resolver
}

func newResolverCache() *resolverCache {
	return &resolverCache{
		handles: map[common.Address]*Resolver{},
	}
}

func (c *resolverCache) get(addr common.Address) (*Resolver, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, found := c.handles[addr]
	return r, found
}

func (c *resolverCache) put(addr common.Address, r *Resolver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handles[addr] = r
}

// getOrCreate returns the cached handle for addr, building one with
// factory if absent. The presence check is redone under the write lock so
// concurrent callers racing on the same address run factory once and all
// get the winning handle.
func (c *resolverCache) getOrCreate(addr common.Address, factory func() *Resolver) *Resolver {
	if r, found := c.get(addr); found {
		return r
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if r, found := c.handles[addr]; found {
		return r
	}
	r := factory()
	c.handles[addr] = r
	return r
}

func (c *resolverCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.handles)
}
