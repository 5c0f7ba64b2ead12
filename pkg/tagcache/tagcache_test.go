package tagcache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := New()

	cache.Set("products:all", []string{"P001", "P002"}, 0, "Products")

	value, ok := cache.Get("products:all")
	assert.True(t, ok)
	assert.Equal(t, []string{"P001", "P002"}, value)

	_, ok = cache.Get("users:all")
	assert.False(t, ok)
}

func TestCache_SetReplacesExistingEntry(t *testing.T) {
	cache := New()

	cache.Set("products:all", "old", 0, "Products")
	cache.Set("products:all", "new", 0, "Products", "DashboardMetrics")

	value, ok := cache.Get("products:all")
	assert.True(t, ok)
	assert.Equal(t, "new", value)
	assert.Equal(t, 1, cache.Len())

	// The entry must now be reachable through the new tag as well
	removed := cache.Invalidate("DashboardMetrics")
	assert.Equal(t, 1, removed)

	_, ok = cache.Get("products:all")
	assert.False(t, ok)
}

func TestCache_Invalidate(t *testing.T) {
	tests := []struct {
		name            string
		invalidate      []string
		expectedRemoved int
		expectedMisses  []string
		expectedHits    []string
	}{
		{
			name:            "single tag drops only its entries",
			invalidate:      []string{"Products"},
			expectedRemoved: 2,
			expectedMisses:  []string{"products:all", "products:search=chair"},
			expectedHits:    []string{"users:all", "dashboard"},
		},
		{
			name:            "multiple tags drop the union",
			invalidate:      []string{"Products", "Users"},
			expectedRemoved: 3,
			expectedMisses:  []string{"products:all", "products:search=chair", "users:all"},
			expectedHits:    []string{"dashboard"},
		},
		{
			name:            "unknown tag removes nothing",
			invalidate:      []string{"Expenses"},
			expectedRemoved: 0,
			expectedHits:    []string{"products:all", "products:search=chair", "users:all", "dashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := New()
			cache.Set("products:all", 1, 0, "Products")
			cache.Set("products:search=chair", 2, 0, "Products")
			cache.Set("users:all", 3, 0, "Users")
			cache.Set("dashboard", 4, 0, "DashboardMetrics")

			removed := cache.Invalidate(tt.invalidate...)
			assert.Equal(t, tt.expectedRemoved, removed)

			for _, key := range tt.expectedMisses {
				_, ok := cache.Get(key)
				assert.False(t, ok, "expected miss for %s", key)
			}
			for _, key := range tt.expectedHits {
				_, ok := cache.Get(key)
				assert.True(t, ok, "expected hit for %s", key)
			}
		})
	}
}

func TestCache_EntryWithMultipleTags(t *testing.T) {
	cache := New()
	cache.Set("dashboard", "metrics", 0, "DashboardMetrics", "Expenses")

	// Invalidating either tag removes the entry exactly once
	removed := cache.Invalidate("Expenses")
	assert.Equal(t, 1, removed)

	removed = cache.Invalidate("DashboardMetrics")
	assert.Equal(t, 0, removed)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := New()

	cache.Set("dashboard", "metrics", time.Nanosecond, "DashboardMetrics")
	time.Sleep(time.Millisecond)

	_, ok := cache.Get("dashboard")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := New()

	cache.Set("users:all", "users", 0, "Users")
	time.Sleep(time.Millisecond)

	_, ok := cache.Get("users:all")
	assert.True(t, ok)
}

func TestCache_Flush(t *testing.T) {
	cache := New()
	cache.Set("a", 1, 0, "Products")
	cache.Set("b", 2, 0, "Users")

	cache.Flush()

	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 0, cache.Invalidate("Products", "Users"))
}

func TestCache_DumpSkipsExpiredEntries(t *testing.T) {
	cache := New()
	cache.Set("live", "v1", 0, "Products")
	cache.Set("dead", "v2", time.Nanosecond, "Products")
	time.Sleep(time.Millisecond)

	snapshot := cache.Dump()

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "live", snapshot[0].Key)
	assert.Equal(t, "v1", snapshot[0].Value)
	assert.Equal(t, []string{"Products"}, snapshot[0].Tags)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			key := fmt.Sprintf("products:%d", n)
			cache.Set(key, n, 0, "Products")
			cache.Get(key)

			if n%10 == 0 {
				cache.Invalidate("Products")
			}
		}(i)
	}
	wg.Wait()

	// No panics or deadlocks; remaining entries are still consistent
	removed := cache.Invalidate("Products")
	assert.GreaterOrEqual(t, removed, 0)
	assert.Equal(t, 0, cache.Len())
}
