package inventory

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// CacheConfig sizes the item lookup cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the built-in cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedStockEntry struct {
	Version  string
	Item     domain.StockItem
	CachedAt time.Time
}

// stockCache is an expiring LRU of items by exact name.
// Entries are copies so callers cannot mutate cached state.
// generation advances on every Clear; a read taken under an older
// generation is never stored.
type stockCache struct {
	lru        *expirable.LRU[string, *cachedStockEntry]
	hits       atomic.Int64
	misses     atomic.Int64
	generation atomic.Uint64

	// mu orders SetIfCurrent against Clear
	mu sync.Mutex
}

func newStockCache(cfg CacheConfig) *stockCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &stockCache{
		lru: expirable.NewLRU[string, *cachedStockEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached item when present and current
func (c *stockCache) Get(name string) (domain.StockItem, bool) {
	entry, found := c.lru.Get(name)
	if !found || entry.Version != CacheSchemaVersion {
		if found {
			c.lru.Remove(name)
		}
		c.misses.Add(1)
		return domain.StockItem{}, false
	}
	c.hits.Add(1)
	return entry.Item, true
}

// Set stores a copy of item under its name
func (c *stockCache) Set(item domain.StockItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(item)
}

// Generation identifies the current cache contents. Read it before loading
// an item from the store and pass it to SetIfCurrent.
func (c *stockCache) Generation() uint64 {
	return c.generation.Load()
}

// SetIfCurrent stores item only if no Clear happened since generation was read
func (c *stockCache) SetIfCurrent(item domain.StockItem, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation.Load() != generation {
		return false
	}
	c.add(item)
	return true
}

func (c *stockCache) add(item domain.StockItem) {
	c.lru.Add(item.Name, &cachedStockEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	})
}

// Clear drops every entry; called after each day advance
func (c *stockCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation.Add(1)
	c.lru.Purge()
}

// Stats returns a snapshot of hit and miss counters
func (c *stockCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
