// Package cache keeps compiled verifier modules in memory.
package cache

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"

	"github.com/CosmWasm/blsverify/types"
)

// Metrics counts cache activity.
type Metrics struct {
	Hits     uint32
	Misses   uint32
	Elements uint64
	Pinned   uint64
}

// Cache maps checksums to compiled modules. Pinned entries survive Remove.
type Cache struct {
	mu       sync.RWMutex
	compiled map[types.Checksum]wazero.CompiledModule
	pinned   map[types.Checksum]struct{}
	hits     uint32
	misses   uint32
}

func New() *Cache {
	return &Cache{
		compiled: make(map[types.Checksum]wazero.CompiledModule),
		pinned:   make(map[types.Checksum]struct{}),
	}
}

// Load returns the compiled module for cs and records a hit or a miss.
func (c *Cache) Load(cs types.Checksum) (wazero.CompiledModule, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mod, ok := c.compiled[cs]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return mod, ok
}

// Save stores mod. If an entry already exists it is kept and mod is
// returned to the caller unused, so the caller should close it.
func (c *Cache) Save(cs types.Checksum, mod wazero.CompiledModule) (wazero.CompiledModule, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.compiled[cs]; ok {
		return existing, false
	}
	c.compiled[cs] = mod
	return mod, true
}

// Pin protects the entry for cs from Remove. It reports false if there is
// no such entry.
func (c *Cache) Pin(cs types.Checksum) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.compiled[cs]; !ok {
		return false
	}
	c.pinned[cs] = struct{}{}
	return true
}

func (c *Cache) Unpin(cs types.Checksum) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pinned, cs)
}

// Remove drops an unpinned entry and closes its compiled module. It reports
// whether the entry is gone.
func (c *Cache) Remove(ctx context.Context, cs types.Checksum) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.pinned[cs]; ok {
		return false
	}
	if mod, ok := c.compiled[cs]; ok {
		_ = mod.Close(ctx)
		delete(c.compiled, cs)
	}
	return true
}

func (c *Cache) Metrics() Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Metrics{
		Hits:     c.hits,
		Misses:   c.misses,
		Elements: uint64(len(c.compiled)),
		Pinned:   uint64(len(c.pinned)),
	}
}

// Close releases every compiled module.
func (c *Cache) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var firstErr error
	for cs, mod := range c.compiled {
		if err := mod.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.compiled, cs)
	}
	return firstErr
}
