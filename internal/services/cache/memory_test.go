package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, maxSizeMB int64) *MemoryCache {
	c := NewMemoryCache(maxSizeMB)
	t.Cleanup(c.Stop)
	return c
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	got, ok := c.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, []byte("value"), got)

	// Overwrite replaces the value.
	require.NoError(t, c.Set(ctx, "key", []byte("other"), time.Minute))
	got, ok = c.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, []byte("other"), got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 10*time.Millisecond))

	_, ok := c.Get(ctx, "short")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = c.Get(ctx, "short")
	assert.False(t, ok)
}

func TestMemoryCacheSweepReclaimsUnreadKeys(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	// Keys that expire and are never read again, like time-windowed list
	// keys, must not stay resident.
	for i := 0; i < 500; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("window-%d", i), []byte("v"), time.Millisecond))
	}
	time.Sleep(20 * time.Millisecond)

	c.sweep()

	c.mu.Lock()
	resident := len(c.items)
	size := c.currentSize
	c.mu.Unlock()

	assert.Zero(t, resident)
	assert.Zero(t, size)
}

func TestMemoryCacheSizeCap(t *testing.T) {
	c := newTestCache(t, 1)
	ctx := context.Background()

	big := make([]byte, 600*1024)
	require.NoError(t, c.Set(ctx, "first", big, time.Minute))
	require.NoError(t, c.Set(ctx, "second", big, time.Minute))

	// The cap is 1 MB; both entries cannot be resident at once.
	_, firstOK := c.Get(ctx, "first")
	_, secondOK := c.Get(ctx, "second")
	assert.False(t, firstOK)
	assert.True(t, secondOK)

	c.mu.Lock()
	size := c.currentSize
	c.mu.Unlock()
	assert.LessOrEqual(t, size, int64(1024*1024))
}

func TestMemoryCacheDelete(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, c.Delete(ctx, "key"))
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := newTestCache(t, 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n)
			require.NoError(t, c.Set(ctx, key, []byte("v"), time.Minute))
			_, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		_, ok := c.Get(ctx, fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
	}
}
