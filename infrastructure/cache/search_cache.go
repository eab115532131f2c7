package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"media-portal/domain/model"
)

const (
	DefaultCapacity = 50
	DefaultTTL      = 10 * time.Minute
)

type entry struct {
	key      string
	value    *model.SearchResult
	storedAt time.Time
}

// SearchCache is a per-process TTL cache bounded by entry count.
// Eviction follows insertion order: overwriting a key keeps its original position.
type SearchCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	order    *list.List
	items    map[string]*list.Element
}

// NewSearchCache creates an empty cache. Non-positive arguments fall back to the defaults.
func NewSearchCache(capacity int, ttl time.Duration) *SearchCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SearchCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// WithClock replaces the time source (fluent)
func (c *SearchCache) WithClock(now func() time.Time) *SearchCache {
	c.now = now
	return c
}

func (c *SearchCache) Get(_ context.Context, key string) (*model.SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if c.now().Sub(e.storedAt) >= c.ttl {
		c.order.Remove(el)
		delete(c.items, key)
		return nil, false
	}
	return e.value, true
}

func (c *SearchCache) Set(_ context.Context, key string, result *model.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.value = result
		e.storedAt = c.now()
		return
	}
	c.items[key] = c.order.PushBack(&entry{key: key, value: result, storedAt: c.now()})
	if c.order.Len() > c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}
}

// Len returns the number of stored entries, stale ones included
func (c *SearchCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
