package ens

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestCacheGetPut(t *testing.T) {
	c := newResolverCache()
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")

	if _, found := c.get(addr); found {
		t.Fatalf("empty cache returned a handle")
	}

	first := &Resolver{addr: addr}
	c.put(addr, first)
	got, found := c.get(addr)
	if !found || got != first {
		t.Fatalf("cache didn't return the stored handle")
	}

	// last writer wins on duplicate address
	second := &Resolver{addr: addr}
	c.put(addr, second)
	got, _ = c.get(addr)
	if got != second {
		t.Fatalf("cache kept the old handle after overwrite")
	}
	if c.len() != 1 {
		t.Fatalf("cache has %d entries, want 1", c.len())
	}
}

func TestCacheGetOrCreateConcurrent(t *testing.T) {
	c := newResolverCache()
	addr := common.HexToAddress("0x2222222222222222222222222222222222222222")

	var factoryCalls int64
	var wg sync.WaitGroup
	handles := make([]*Resolver, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = c.getOrCreate(addr, func() *Resolver {
				atomic.AddInt64(&factoryCalls, 1)
				return &Resolver{addr: addr}
			})
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt64(&factoryCalls); n != 1 {
		t.Errorf("factory ran %d times, want 1", n)
	}
	for i := 1; i < len(handles); i++ {
		if handles[i] != handles[0] {
			t.Fatalf("concurrent callers got distinct handles")
		}
	}
	if c.len() != 1 {
		t.Errorf("cache has %d entries, want 1", c.len())
	}
}
