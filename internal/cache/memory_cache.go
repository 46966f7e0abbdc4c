package cache

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64 // Unix nanoseconds; zero = no expire
}

func (i item[V]) expired(now int64) bool {
	return i.expiration > 0 && now > i.expiration
}

type shard[V any] struct {
	sync.RWMutex
	items map[string]item[V]
}

type MemoryCache[V any] struct {
	shards   []*shard[V]
	quit     chan struct{}
	stopOnce sync.Once
}

var _ Cache[string] = (*MemoryCache[string])(nil)

// NewMemoryCache creates a 32-shard cache with a 1s janitor.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](32, time.Second)
}

// NewMemoryCacheWithOptions allows customizing shard count & janitor interval.
func NewMemoryCacheWithOptions[V any](shardCount int, janitorInterval time.Duration) *MemoryCache[V] {
	if shardCount < 1 {
		shardCount = 1
	}
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		quit:   make(chan struct{}),
	}
	for i := range mc.shards {
		mc.shards[i] = &shard[V]{items: make(map[string]item[V])}
	}
	go mc.startJanitor(janitorInterval)
	return mc
}

// Close terminates the janitor goroutine. Safe to call more than once.
func (mc *MemoryCache[V]) Close() error {
	mc.stopOnce.Do(func() { close(mc.quit) })
	return nil
}

func (mc *MemoryCache[V]) getShard(key string) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return mc.shards[h.Sum32()%uint32(len(mc.shards))]
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	now := time.Now().UnixNano()
	s := mc.getShard(key)

	s.RLock()
	itm, ok := s.items[key]
	s.RUnlock()

	if !ok {
		return zero, ErrCacheMiss
	}
	if itm.expired(now) {
		s.Lock()
		// re-check under the write lock; a Set may have refreshed it
		if cur, still := s.items[key]; still && cur.expired(now) {
			delete(s.items, key)
		}
		s.Unlock()
		return zero, ErrCacheMiss
	}
	return itm.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	s := mc.getShard(key)
	s.Lock()
	s.items[key] = item[V]{value: value, expiration: exp}
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.getShard(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) DeletePrefix(_ context.Context, prefix string) error {
	for _, s := range mc.shards {
		s.Lock()
		for k := range s.items {
			if strings.HasPrefix(k, prefix) {
				delete(s.items, k)
			}
		}
		s.Unlock()
	}
	return nil
}

// Len counts live and not yet collected entries.
func (mc *MemoryCache[V]) Len() int {
	n := 0
	for _, s := range mc.shards {
		s.RLock()
		n += len(s.items)
		s.RUnlock()
	}
	return n
}

func (mc *MemoryCache[V]) startJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now().UnixNano()
			for _, s := range mc.shards {
				s.Lock()
				for k, itm := range s.items {
					if itm.expired(now) {
						delete(s.items, k)
					}
				}
				s.Unlock()
			}
		case <-mc.quit:
			return
		}
	}
}
