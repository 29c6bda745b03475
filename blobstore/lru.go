package blobstore

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// lruCache is a byte-capacity LRU over whole blobs, keyed by name.
type lruCache struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[string]*list.Element
	evictList *list.List

	hits   atomic.Int64
	misses atomic.Int64
}

type lruEntry struct {
	name  string
	value []byte
}

func newLRUCache(capacity int64) *lruCache {
	return &lruCache{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
	}
}

func (c *lruCache) get(name string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[name]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(ent)
		return ent.Value.(*lruEntry).value, true
	}
	c.misses.Add(1)
	return nil, false
}

func (c *lruCache) set(name string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[name]; ok {
		c.evictList.MoveToFront(ent)
		c.size += int64(len(value)) - int64(len(ent.Value.(*lruEntry).value))
		ent.Value.(*lruEntry).value = value
		c.evict()
		return
	}

	if int64(len(value)) > c.capacity {
		return // larger than the whole cache
	}

	ent := c.evictList.PushFront(&lruEntry{name: name, value: value})
	c.items[name] = ent
	c.size += int64(len(value))
	c.evict()
}

func (c *lruCache) remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[name]; ok {
		c.size -= int64(len(ent.Value.(*lruEntry).value))
		c.evictList.Remove(ent)
		delete(c.items, name)
	}
}

// evict drops least-recently-used entries until size fits capacity.
// Caller must hold mu.
func (c *lruCache) evict() {
	for c.size > c.capacity {
		ent := c.evictList.Back()
		if ent == nil {
			return
		}
		e := ent.Value.(*lruEntry)
		c.size -= int64(len(e.value))
		c.evictList.Remove(ent)
		delete(c.items, e.name)
	}
}
