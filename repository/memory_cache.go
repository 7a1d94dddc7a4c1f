package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryCache is a process-local CacheRepository used when no redis server
// is configured.
type MemoryCache struct {
	store *cache.Cache
}

func NewMemoryCache(ttl, cleanupInterval time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &MemoryCache{store: cache.New(ttl, cleanupInterval)}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	val, ok := m.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.store.SetDefault(key, value)
	return nil
}

func (m *MemoryCache) Delete(key string) error {
	m.store.Delete(key)
	return nil
}

func (m *MemoryCache) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryCache) Len() int {
	return m.store.ItemCount()
}
