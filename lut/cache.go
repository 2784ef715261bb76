package lut

import (
	"context"
	"sync"

	"flavorize/flavor"
)

// Key identifies a cached table.
type Key struct {
	Flavor    string
	Algorithm Algorithm
}

// Cache memoizes built tables per (flavor, algorithm) pair. The key space
// is small and finite (flavors × algorithms), so entries are never evicted.
type Cache struct {
	mu   sync.Mutex
	luts map[Key]*Lut
}

func NewCache() *Cache {
	return &Cache{luts: make(map[Key]*Lut)}
}

// GetOrBuild returns the cached table for the pair, building it on first
// request. The lock is held for the duration of a build, so concurrent
// callers never build the same table twice; builds are rare relative to
// lookups, which keeps the contention acceptable.
func (c *Cache) GetOrBuild(ctx context.Context, f *flavor.Flavor, algo Algorithm) (*Lut, error) {
	key := Key{Flavor: f.Name, Algorithm: algo}

	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.luts[key]; ok {
		return l, nil
	}

	l, err := Build(ctx, f, algo)
	if err != nil {
		return nil, err
	}
	c.luts[key] = l

	return l, nil
}

// Len reports the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.luts)
}
