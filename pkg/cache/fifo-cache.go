package cache

import (
	"container/list"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FIFOCache is a first-in-first-out cache with TTL support. Insertion order
// alone decides eviction; Get never changes an entry's position.
type FIFOCache struct {
	elements   map[string]*list.Element
	list       *list.List
	maxSize    int
	defaultTtl time.Duration
	mu         sync.RWMutex
	stopChan   chan struct{}
}

type fifoItem struct {
	key  string
	data entry
}

// NewFIFOCache creates a FIFO cache and starts its background cleanup
// goroutine. Call Stop when the cache is no longer needed.
func NewFIFOCache(maxSize, defaultTtlSeconds int) *FIFOCache {
	cache := &FIFOCache{
		elements:   make(map[string]*list.Element),
		list:       list.New(),
		maxSize:    maxSize,
		defaultTtl: time.Duration(defaultTtlSeconds) * time.Second,
		stopChan:   make(chan struct{}),
	}

	go cache.cleanupExpiredKeys()

	return cache
}

func (c *FIFOCache) cleanupExpiredKeys() {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			expiredCount := 0

			for e := c.list.Front(); e != nil; {
				next := e.Next()
				item := e.Value.(*fifoItem)

				if now.After(item.data.timeout) {
					c.list.Remove(e)
					delete(c.elements, item.key)
					expiredCount++
				}
				e = next
			}

			if expiredCount > 0 {
				zap.L().
					Debug("Cleaned up expired FIFO cache entries", zap.Int("count", expiredCount))
			}
			c.mu.Unlock()

		case <-c.stopChan:
			return
		}
	}
}

func (c *FIFOCache) Stop() {
	close(c.stopChan)
}

func (c *FIFOCache) Set(key string, value any) {
	c.SetWithTTL(key, value, int(c.defaultTtl.Seconds()))
}

func (c *FIFOCache) SetWithTTL(key string, value any, ttlSeconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.elements[key]; exists {
		// Refresh value and TTL; insertion order stays put.
		item := element.Value.(*fifoItem)
		item.data.value = value
		item.data.timeout = time.Now().Add(time.Duration(ttlSeconds) * time.Second)
		return
	}

	if c.list.Len() >= c.maxSize {
		oldest := c.list.Front()
		if oldest != nil {
			oldestItem := oldest.Value.(*fifoItem)
			c.list.Remove(oldest)
			delete(c.elements, oldestItem.key)
			zap.L().
				Debug("FIFO cache evicted oldest item", zap.String("key", oldestItem.key))
		}
	}

	item := &fifoItem{
		key: key,
		data: entry{
			value:   value,
			timeout: time.Now().Add(time.Duration(ttlSeconds) * time.Second),
		},
	}

	element := c.list.PushBack(item)
	c.elements[key] = element
}

func (c *FIFOCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, exists := c.elements[key]
	if !exists {
		return nil, false
	}

	item := element.Value.(*fifoItem)

	if time.Now().After(item.data.timeout) {
		c.list.Remove(element)
		delete(c.elements, key)
		return nil, false
	}

	return item.data.value, true
}

func (c *FIFOCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.elements[key]; exists {
		c.list.Remove(element)
		delete(c.elements, key)
	}
}

func (c *FIFOCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Len()
}

func (c *FIFOCache) MaxSize() int {
	return c.maxSize
}

func (c *FIFOCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.Init()
	c.elements = make(map[string]*list.Element)
}
