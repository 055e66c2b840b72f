package extract

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/noto-news/noto"
)

// DefaultCacheSize bounds the per-process extraction result cache.
const DefaultCacheSize = 100

// resultCache is a fixed-capacity cache of extraction results keyed by URL
// hash. At capacity the oldest-inserted entry is evicted (FIFO). All
// methods are safe for concurrent use; the mutex guards both the map and
// the insertion-order queue, which would otherwise corrupt under
// concurrent read/evict/write.
type resultCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[uint64]*noto.ExtractionResult
	order    []uint64
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &resultCache{
		capacity: capacity,
		entries:  make(map[uint64]*noto.ExtractionResult, capacity),
	}
}

func cacheKey(url string) uint64 {
	return xxhash.Sum64String(url)
}

func (c *resultCache) get(url string) (*noto.ExtractionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries[cacheKey(url)]
	return result, ok
}

func (c *resultCache) put(url string, result *noto.ExtractionResult) {
	key := cacheKey(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = result
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = result
	c.order = append(c.order, key)
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
