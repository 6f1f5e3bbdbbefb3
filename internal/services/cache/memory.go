package cache

import (
	"context"
	"sync"
	"time"
)

const sweepInterval = time.Minute

// MemoryCache implements an in-memory cache with a size cap. Expired
// entries are reclaimed lazily on read and by a background sweep, so
// keys that are never read again still get evicted.
type MemoryCache struct {
	mu          sync.Mutex
	items       map[string]*cacheItem
	maxBytes    int64
	currentSize int64
	stopCh      chan struct{}
	wg          sync.WaitGroup
}

type cacheItem struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a new in-memory cache. maxSizeMB caps resident
// data; zero or negative means uncapped.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		items:    make(map[string]*cacheItem),
		maxBytes: maxSizeMB * 1024 * 1024,
		stopCh:   make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweepExpired()

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	item, exists := mc.items[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expiry) {
		mc.removeLocked(key, item)
		return nil, false
	}
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	size := int64(len(key) + len(value))

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if old, exists := mc.items[key]; exists {
		mc.removeLocked(key, old)
	}
	mc.makeRoomLocked(size)

	mc.items[key] = &cacheItem{
		value:  value,
		expiry: time.Now().Add(ttl),
		size:   size,
	}
	mc.currentSize += size
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if item, exists := mc.items[key]; exists {
		mc.removeLocked(key, item)
	}
	return nil
}

// Stop ends the background sweep goroutine
func (mc *MemoryCache) Stop() {
	close(mc.stopCh)
	mc.wg.Wait()
}

// sweepExpired reclaims expired entries periodically
func (mc *MemoryCache) sweepExpired() {
	defer mc.wg.Done()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.sweep()
		case <-mc.stopCh:
			return
		}
	}
}

// sweep removes every expired entry
func (mc *MemoryCache) sweep() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.removeExpiredLocked()
}

func (mc *MemoryCache) removeLocked(key string, item *cacheItem) {
	delete(mc.items, key)
	mc.currentSize -= item.size
}

func (mc *MemoryCache) removeExpiredLocked() {
	now := time.Now()
	for key, item := range mc.items {
		if now.After(item.expiry) {
			mc.removeLocked(key, item)
		}
	}
}

// makeRoomLocked evicts entries until sizeNeeded fits under the cap.
// Expired entries go first, then arbitrary live ones.
func (mc *MemoryCache) makeRoomLocked(sizeNeeded int64) {
	if mc.maxBytes <= 0 || mc.currentSize+sizeNeeded <= mc.maxBytes {
		return
	}

	mc.removeExpiredLocked()

	for key, item := range mc.items {
		if mc.currentSize+sizeNeeded <= mc.maxBytes {
			break
		}
		mc.removeLocked(key, item)
	}
}
