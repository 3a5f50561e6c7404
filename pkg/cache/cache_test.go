package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlustbites/content-service/config"
)

func testCacheConfig(cacheType string) config.CacheConfig {
	return config.CacheConfig{Type: cacheType, Capacity: 8, DefaultTTL: 60}
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache(2, 60)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestFIFOCache_EvictsOldestInsertion(t *testing.T) {
	c := NewFIFOCache(2, 60)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)

	// Unlike LRU, reading "a" must not save it.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestCache_ExpiredEntryReadsAsAbsent(t *testing.T) {
	c := NewLRUCache(8, 60)
	defer c.Stop()

	c.SetWithTTL("gone", "value", -1)
	_, ok := c.Get("gone")
	assert.False(t, ok)
}

func TestNewCache_TypeSelection(t *testing.T) {
	lru := NewCache(testCacheConfig("LRU"))
	defer lru.Stop()
	assert.IsType(t, &LRUCache{}, lru)

	fifo := NewCache(testCacheConfig("FIFO"))
	defer fifo.Stop()
	assert.IsType(t, &FIFOCache{}, fifo)

	fallback := NewCache(testCacheConfig(""))
	defer fallback.Stop()
	assert.IsType(t, &LRUCache{}, fallback)
}

func TestGetWithMultiLevelCache_FetchThenMemoryHit(t *testing.T) {
	mem := NewLRUCache(8, 60)
	defer mem.Stop()

	fetches := 0
	fetch := func(ctx context.Context) (string, error) {
		fetches++
		return "origin-value", nil
	}

	got, err := GetWithMultiLevelCacheDefault(context.Background(), "k", mem, nil, fetch, 60, 300)
	require.NoError(t, err)
	assert.Equal(t, "origin-value", got)
	assert.Equal(t, 1, fetches)

	// Second read must be served from memory.
	got, err = GetWithMultiLevelCacheDefault(context.Background(), "k", mem, nil, fetch, 60, 300)
	require.NoError(t, err)
	assert.Equal(t, "origin-value", got)
	assert.Equal(t, 1, fetches)
}

func TestGetWithMultiLevelCache_FetchError(t *testing.T) {
	mem := NewLRUCache(8, 60)
	defer mem.Stop()

	fetchErr := errors.New("origin unavailable")
	fetch := func(ctx context.Context) (string, error) {
		return "", fetchErr
	}

	_, err := GetWithMultiLevelCacheDefault(context.Background(), "miss", mem, nil, fetch, 60, 300)
	assert.ErrorIs(t, err, fetchErr)
}

func TestGetWithMultiLevelCache_SharedFlightTypeMismatch(t *testing.T) {
	mem := NewLRUCache(8, 60)
	defer mem.Stop()

	release := make(chan struct{})
	started := make(chan struct{})

	var strVal string
	var strErr error
	strDone := make(chan struct{})
	go func() {
		defer close(strDone)
		strVal, strErr = GetWithMultiLevelCacheDefault(context.Background(), "shared", mem, nil,
			func(ctx context.Context) (string, error) {
				close(started)
				<-release
				return "text", nil
			}, 60, 300)
	}()
	<-started

	// Join the in-flight fetch under the same key with a different value
	// type. It must surface an error, never a silent zero value.
	var intVal int
	var intErr error
	intDone := make(chan struct{})
	go func() {
		defer close(intDone)
		intVal, intErr = GetWithMultiLevelCacheDefault(context.Background(), "shared", mem, nil,
			func(ctx context.Context) (int, error) { return 7, nil }, 60, 300)
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	<-strDone
	<-intDone

	require.NoError(t, strErr)
	assert.Equal(t, "text", strVal)

	if intErr == nil {
		// The second caller missed the flight and ran its own fetch.
		assert.Equal(t, 7, intVal)
	} else {
		assert.ErrorIs(t, intErr, ErrTypeMismatch)
	}
}

func TestGetWithMultiLevelCache_FetchContextDeadline(t *testing.T) {
	mem := NewLRUCache(8, 60)
	defer mem.Stop()

	fetch := func(ctx context.Context) (string, error) {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		require.LessOrEqual(t, time.Until(deadline), time.Second)
		return "v", nil
	}

	got, err := GetWithMultiLevelCacheDefault(context.Background(), "deadline", mem, nil, fetch, 60, 300)
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
