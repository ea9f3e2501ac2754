package catalog

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// cachedEntry wraps catalog rows with version metadata for cache invalidation
type cachedEntry struct {
	Version  string
	Items    []domain.Item
	CachedAt time.Time
}

// itemCache is an in-memory LRU for catalog reads with time-based expiration.
// Entries hold private copies; callers always receive fresh slices.
type itemCache struct {
	lru *expirable.LRU[string, *cachedEntry]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func itemKey(code int) string {
	return cacheKeyItemPrefix + strconv.Itoa(code)
}

// get returns a copy of the cached rows for key
func (c *itemCache) get(key string) ([]domain.Item, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		metrics.CatalogCacheRequests.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		metrics.CatalogCacheRequests.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	metrics.CatalogCacheRequests.WithLabelValues(metrics.ResultHit).Inc()
	return copyItems(entry.Items), true
}

func (c *itemCache) set(key string, items []domain.Item) {
	c.lru.Add(key, &cachedEntry{
		Version:  CacheSchemaVersion,
		Items:    copyItems(items),
		CachedAt: time.Now(),
	})
}

// invalidate drops the list and the single entry for code
func (c *itemCache) invalidate(code int) {
	c.lru.Remove(cacheKeyList)
	c.lru.Remove(itemKey(code))
}

func (c *itemCache) clear() {
	c.lru.Purge()
}

func copyItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}
