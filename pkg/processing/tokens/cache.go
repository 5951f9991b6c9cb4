package tokens

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
)

// CacheObserver is told whether each lookup hit the cache.
type CacheObserver interface {
	ObserveCacheLookup(hit bool)
}

// CachedCounter memoizes another Counter. Entries are keyed by model and an
// xxhash of the text; failed counts are never stored.
type CachedCounter struct {
	next     Counter
	cache    *ristretto.Cache[string, int]
	observer CacheObserver
}

// NewCachedCounter wraps next with a cache holding up to size counts.
// observer may be nil.
func NewCachedCounter(next Counter, size int, observer CacheObserver) (*CachedCounter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters:        int64(size) * 10,
		MaxCost:            int64(size),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}

	return &CachedCounter{
		next:     next,
		cache:    cache,
		observer: observer,
	}, nil
}

// Count returns the cached count for (text, model), computing it with the
// wrapped counter on a miss.
func (c *CachedCounter) Count(text, model string) (int, error) {
	key := cacheKey(text, model)

	if n, ok := c.cache.Get(key); ok {
		c.observe(true)
		return n, nil
	}
	c.observe(false)

	n, err := c.next.Count(text, model)
	if err != nil {
		return 0, err
	}

	c.cache.Set(key, n, 1)
	return n, nil
}

// Wait blocks until pending cache writes are applied.
func (c *CachedCounter) Wait() {
	c.cache.Wait()
}

// Close releases the cache.
func (c *CachedCounter) Close() {
	c.cache.Close()
}

func (c *CachedCounter) observe(hit bool) {
	if c.observer != nil {
		c.observer.ObserveCacheLookup(hit)
	}
}

func cacheKey(text, model string) string {
	return model + "\x00" + strconv.FormatUint(xxhash.Sum64String(text), 16) + ":" + strconv.Itoa(len(text))
}
