package gosigma

import (
	"fmt"
	"sync"
)

// ProductCache remembers unit products Σa·Σb for a given variable count.
// Implementations must treat (a, b) and (b, a) as the same key and must be
// safe for concurrent use. A failed Load is a miss; Store failures are the
// implementation's to report.
type ProductCache interface {
	Load(n int, a, b Shape) (Polynomial, bool)
	Store(n int, a, b Shape, p Polynomial)
}

// OrderedPair returns a and b in a fixed order so that products commute in cache keys.
func OrderedPair(a, b Shape) (Shape, Shape) {
	if b < a {
		return b, a
	}
	return a, b
}

// MemoryCache is an in-process ProductCache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]Polynomial
	hits    int
	misses  int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]Polynomial{}}
}

func memoryKey(n int, a, b Shape) string {
	a, b = OrderedPair(a, b)
	return fmt.Sprintf("%d|%s|%s", n, a, b)
}

func (c *MemoryCache) Load(n int, a, b Shape) (Polynomial, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[memoryKey(n, a, b)]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return p, ok
}

func (c *MemoryCache) Store(n int, a, b Shape, p Polynomial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[memoryKey(n, a, b)] = Polynomial{terms: p.flatten()}
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *MemoryCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
