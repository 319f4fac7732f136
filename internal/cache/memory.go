package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCache - кэш в памяти процесса, для локального запуска и тестов.
type memoryCache struct {
	c *gocache.Cache
}

// NewMemory создаёт in-memory кэш; defaultTTL применяется, когда Set вызван с ttl <= 0.
func NewMemory(defaultTTL time.Duration) Store {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}

	return &memoryCache{c: gocache.New(defaultTTL, time.Minute)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	v, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}

	b, ok := v.([]byte)
	return b, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}

	// Копия, чтобы вызывающий мог переиспользовать буфер.
	m.c.Set(key, append([]byte(nil), val...), ttl)
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

func (m *memoryCache) Close() error {
	m.c.Flush()
	return nil
}
