package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты Redis-реализации:
// - поднимают redis:7-alpine через testcontainers-go;
// - проверяют Get/Set/Delete, промах (redis.Nil -> ok=false), TTL и префикс ключей.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -race -count=1

// startRedis - поднимает Redis и возвращает его URL.
// Если переменная окружения GO_TEST_INTEGRATION не установлена - тест пропускается.
func startRedis(t *testing.T) string {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting redis container with image=%q", req.Image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestRedis_SetGetDelete(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	s, err := NewRedisCache(url, "test:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, PortfolioKey("alice"), []byte(`{"a":1}`), time.Minute))

	got, ok, err := s.Get(ctx, PortfolioKey("alice"))
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"a":1}`, string(got))

	// Префикс применяется к реальному ключу.
	rc := s.(*redisCache)
	ttl, err := rc.rdb.TTL(ctx, "test:user:alice").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Delete(ctx, PortfolioKey("alice")))
	_, ok, err = s.Get(ctx, PortfolioKey("alice"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedis_TTLExpires(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	s, err := NewRedisCache(url, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set(ctx, CatalogKey, []byte("[]"), time.Second))

	require.Eventually(t, func() bool {
		_, ok, err := s.Get(ctx, CatalogKey)
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache("redis://127.0.0.1:1/0", "")
	require.Error(t, err)
}
