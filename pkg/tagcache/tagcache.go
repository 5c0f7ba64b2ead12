package tagcache

import (
	"sync"
	"time"
)

// Entry is the exported form of a cached item, used for snapshots
type Entry struct {
	Key   string
	Value any
	Tags  []string
}

type entry struct {
	value     any
	tags      []string
	expiresAt time.Time // zero means no expiry
}

// Cache stores query results indexed by invalidation tags. Mutations
// declare the tags they invalidate and every entry labeled with any of
// those tags is dropped, forcing the next read to refetch.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	byTag   map[string]map[string]struct{}
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		byTag:   make(map[string]map[string]struct{}),
	}
}

// Get returns the live value stored under key. Expired entries are
// removed lazily and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Recheck under the write lock, another goroutine may have
		// replaced the entry meanwhile
		if cur, still := c.entries[key]; still && !cur.expiresAt.IsZero() && time.Now().After(cur.expiresAt) {
			c.removeLocked(key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores value under key, labeled with tags. A non-positive ttl
// keeps the entry until it is invalidated.
func (c *Cache) Set(key string, value any, ttl time.Duration, tags ...string) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.removeLocked(key)
	}

	tagsCopy := make([]string, len(tags))
	copy(tagsCopy, tags)

	c.entries[key] = entry{
		value:     value,
		tags:      tagsCopy,
		expiresAt: expiresAt,
	}

	for _, tag := range tagsCopy {
		keys, ok := c.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate drops every entry labeled with any of the given tags and
// returns how many entries were removed
func (c *Cache) Invalidate(tags ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, tag := range tags {
		for key := range c.byTag[tag] {
			if _, ok := c.entries[key]; ok {
				c.removeLocked(key)
				removed++
			}
		}
	}

	return removed
}

// Flush removes all entries
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.byTag = make(map[string]map[string]struct{})
}

// Len returns the number of stored entries, including not yet reaped
// expired ones
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Dump returns a snapshot of all live entries, for persistence
func (c *Cache) Dump() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	snapshot := make([]Entry, 0, len(c.entries))
	for key, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			continue
		}

		tags := make([]string, len(e.tags))
		copy(tags, e.tags)

		snapshot = append(snapshot, Entry{
			Key:   key,
			Value: e.value,
			Tags:  tags,
		})
	}

	return snapshot
}

// removeLocked deletes an entry and its tag index references.
// Caller must hold the write lock.
func (c *Cache) removeLocked(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}

	delete(c.entries, key)

	for _, tag := range e.tags {
		keys := c.byTag[tag]
		delete(keys, key)
		if len(keys) == 0 {
			delete(c.byTag, tag)
		}
	}
}
