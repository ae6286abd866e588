// Package cache provides a small in-memory TTL cache used for rendered
// view fragments and other cheap-to-rebuild values.
package cache

import (
	"sync"
	"time"
)

// TTLCache stores values for a fixed duration. Entries past their
// expiry are treated as absent and reaped lazily or via CleanExpired.
type TTLCache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	items   map[string]entry[T]
}

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

// New creates a TTL cache holding at most maxSize entries.
func New[T any](maxSize int, ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:     ttl,
		maxSize: maxSize,
		items:   make(map[string]entry[T]),
	}
}

// Get retrieves a value from the cache
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.items, key)
		return zero, false
	}
	return e.data, true
}

// Set stores a value in the cache
func (c *TTLCache[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= c.maxSize {
		if _, exists := c.items[key]; !exists {
			c.evictOldest()
		}
	}
	c.items[key] = entry[T]{
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate removes a key from the cache
func (c *TTLCache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// CleanExpired removes all expired entries and returns how many were removed
func (c *TTLCache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Size returns the current number of entries, expired or not
func (c *TTLCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// evictOldest drops the entry closest to expiry. Caller holds the lock.
func (c *TTLCache[T]) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, e := range c.items {
		if first || e.expiresAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.expiresAt
			first = false
		}
	}
	if !first {
		delete(c.items, oldestKey)
	}
}
