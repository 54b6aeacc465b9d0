// Package cache implements the two-tier reference-data cache shared by the
// exchange-rate and purchasing-power sources: an in-process TTL LRU in front
// of a best-effort on-disk JSON store that survives restarts.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Entry wraps a cached value with the time it was fetched from its source.
type Entry[T any] struct {
	Value     T         `json:"value"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Cache is a two-tier store with TTL-based staleness. Reads go memory ->
// disk -> miss; a disk hit repopulates the memory tier. Values past the TTL
// are still returned (callers decide whether stale data is acceptable) but
// report stale via IsStale.
type Cache[T any] struct {
	ttl  time.Duration
	now  func() time.Time
	mem  *expirable.LRU[string, Entry[T]]
	disk *DiskStore
}

func New[T any](dir string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:  ttl,
		now:  time.Now,
		mem:  expirable.NewLRU[string, Entry[T]](16, nil, ttl),
		disk: NewDiskStore(dir),
	}
}

// WithClock replaces the staleness clock, for tests.
func (c *Cache[T]) WithClock(now func() time.Time) *Cache[T] {
	c.now = now
	return c
}

// Get returns the cached entry for key and whether one exists at all;
// freshness is a separate question answered by IsStale.
func (c *Cache[T]) Get(key string) (Entry[T], bool) {
	if entry, ok := c.mem.Get(key); ok {
		return entry, true
	}
	var entry Entry[T]
	if c.disk.Read(key, &entry) {
		c.mem.Add(key, entry)
		return entry, true
	}
	return Entry[T]{}, false
}

// Put replaces the cached value in both tiers. The disk write is
// fire-and-forget.
func (c *Cache[T]) Put(key string, value T) {
	entry := Entry[T]{Value: value, FetchedAt: c.now()}
	c.mem.Add(key, entry)
	c.disk.Write(key, entry)
}

// IsStale reports whether the entry's age has reached the cache TTL.
func (c *Cache[T]) IsStale(entry Entry[T]) bool {
	return c.now().Sub(entry.FetchedAt) >= c.ttl
}
