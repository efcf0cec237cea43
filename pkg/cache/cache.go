package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration

	// onEvict вызывается вне блокировки для каждой вытесненной или протухшей записи
	onEvict func(key string, value V)
}

type Option[V any] func(c *LRUCache[V])

func WithEvictHook[V any](fn func(key string, value V)) Option[V] {
	return func(c *LRUCache[V]) {
		c.onEvict = fn
	}
}

func NewLRUCache[V any](capacity int, ttl time.Duration, opts ...Option[V]) *LRUCache[V] {
	c := &LRUCache[V]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
		ttl:      ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	ele, ok := c.cache[key]
	if !ok {
		c.mu.Unlock()
		return zero, false
	}
	ent := ele.Value.(*entry[V])
	if time.Now().After(ent.expiration) {
		c.removeElement(ele)
		c.mu.Unlock()
		c.evicted(ent)
		return zero, false
	}
	c.ll.MoveToFront(ele)
	c.mu.Unlock()
	return ent.value, true
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()

	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = time.Now().Add(c.ttl)
		c.mu.Unlock()
		return
	}

	ent := &entry[V]{key: key, value: value, expiration: time.Now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	var oldest *entry[V]
	if c.ll.Len() > c.capacity {
		oldest = c.removeOldest()
	}
	c.mu.Unlock()

	if oldest != nil {
		c.evicted(oldest)
	}
}

func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	ele, ok := c.cache[key]
	if !ok {
		c.mu.Unlock()
		return
	}
	c.removeElement(ele)
	c.mu.Unlock()
	c.evicted(ele.Value.(*entry[V]))
}

func (c *LRUCache[V]) removeOldest() *entry[V] {
	ele := c.ll.Back()
	if ele == nil {
		return nil
	}
	c.removeElement(ele)
	return ele.Value.(*entry[V])
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.cache, ent.key)
}

func (c *LRUCache[V]) evicted(ent *entry[V]) {
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start запускает janitor, подходит под интерфейс app.Starter.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache[V]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	var expired []*entry[V]
	now := time.Now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[V])
		if now.After(ent.expiration) {
			c.removeElement(e)
			expired = append(expired, ent)
		}
		e = prev
	}
	c.mu.Unlock()

	for _, ent := range expired {
		c.evicted(ent)
	}
}
