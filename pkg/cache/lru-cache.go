package cache

import (
	"container/list"
	"sync"
	"time"

	"go.uber.org/zap"
)

// LRUCache is a least-recently-used cache with TTL support. Every Get moves
// the entry to the most-recently-used position; when full, the entry at the
// front of the list is evicted.
type LRUCache struct {
	elements   map[string]*list.Element
	list       *list.List
	maxSize    int
	defaultTtl time.Duration
	mu         sync.RWMutex
	stopChan   chan struct{}
}

type lruItem struct {
	key  string
	data entry
}

// NewLRUCache creates an LRU cache and starts its background cleanup
// goroutine. Call Stop when the cache is no longer needed.
func NewLRUCache(maxSize, defaultTtlSeconds int) *LRUCache {
	cache := &LRUCache{
		elements:   make(map[string]*list.Element),
		list:       list.New(),
		maxSize:    maxSize,
		defaultTtl: time.Duration(defaultTtlSeconds) * time.Second,
		stopChan:   make(chan struct{}),
	}

	go cache.cleanupExpiredKeys()

	return cache
}

// cleanupExpiredKeys removes expired entries every 3 seconds until Stop.
func (c *LRUCache) cleanupExpiredKeys() {
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
				item := e.Value.(*lruItem)

				if now.After(item.data.timeout) {
					c.list.Remove(e)
					delete(c.elements, item.key)
					expiredCount++
				}
				e = next
			}

			if expiredCount > 0 {
				zap.L().
					Debug("Cleaned up expired LRU cache entries", zap.Int("count", expiredCount))
			}
			c.mu.Unlock()

		case <-c.stopChan:
			return
		}
	}
}

func (c *LRUCache) Stop() {
	close(c.stopChan)
}

func (c *LRUCache) Set(key string, value any) {
	c.SetWithTTL(key, value, int(c.defaultTtl.Seconds()))
}

func (c *LRUCache) SetWithTTL(key string, value any, ttlSeconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.elements[key]; exists {
		item := element.Value.(*lruItem)
		item.data.value = value
		item.data.timeout = time.Now().Add(time.Duration(ttlSeconds) * time.Second)

		c.list.MoveToBack(element)
		return
	}

	if c.list.Len() >= c.maxSize {
		oldest := c.list.Front()
		if oldest != nil {
			oldestItem := oldest.Value.(*lruItem)
			c.list.Remove(oldest)
			delete(c.elements, oldestItem.key)
			zap.L().
				Debug("LRU cache evicted least recently used item", zap.String("key", oldestItem.key))
		}
	}

	item := &lruItem{
		key: key,
		data: entry{
			value:   value,
			timeout: time.Now().Add(time.Duration(ttlSeconds) * time.Second),
		},
	}

	element := c.list.PushBack(item)
	c.elements[key] = element
}

func (c *LRUCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, exists := c.elements[key]
	if !exists {
		return nil, false
	}

	item := element.Value.(*lruItem)

	if time.Now().After(item.data.timeout) {
		c.list.Remove(element)
		delete(c.elements, key)
		return nil, false
	}

	c.list.MoveToBack(element)

	return item.data.value, true
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.elements[key]; exists {
		c.list.Remove(element)
		delete(c.elements, key)
	}
}

func (c *LRUCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Len()
}

func (c *LRUCache) MaxSize() int {
	return c.maxSize
}

func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.Init()
	c.elements = make(map[string]*list.Element)
}
