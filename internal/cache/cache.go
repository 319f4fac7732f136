// cache - кэш собранных портфолио и каталога навыков.
// Значения хранятся как JSON; реализации: Redis (общий для реплик) и in-memory.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pribylovaa/go-portfolio/internal/config"
)

// Store - минимальный контракт key/value-кэша с TTL.
type Store interface {
	// Get возвращает значение и признак его наличия.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set сохраняет значение; ttl <= 0 - TTL реализации по умолчанию (для Redis - без истечения).
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Ключи кэша.
func PortfolioKey(username string) string { return "user:" + username }

const CatalogKey = "catalog"

// GetJSON читает и декодирует значение. Битая запись считается промахом.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var zero T

	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false, nil
	}

	return v, true, nil
}

func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	const op = "cache/SetJSON"

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.Set(ctx, key, raw, ttl)
}

// New выбирает реализацию по конфигу: Redis, если задан CACHE_REDIS_URL, иначе память процесса.
func New(cfg config.CacheConfig) (Store, error) {
	const op = "cache/New"

	if cfg.RedisURL == "" {
		return NewMemory(cfg.PortfolioTTL), nil
	}

	s, err := NewRedisCache(cfg.RedisURL, cfg.Prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}
