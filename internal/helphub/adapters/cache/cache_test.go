package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helphub/internal/helphub/adapters/cache"
	"helphub/internal/helphub/config"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:            host,
		Port:            port,
		ConnectTimeout:  5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolSize:        10,
		MinIdle:         2,
		IdleTimeout:     5 * time.Minute,
		MaxConnLifetime: 1 * time.Hour,
		DefaultTTL:      1 * time.Minute,
	}

	return s, cfg
}

func TestNewRedisCache_Success(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, redisCache)

	assert.NoError(t, redisCache.Close())
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	ctx := context.Background()

	cfg := &config.RedisConfig{
		Host:           "nonexistent.host",
		Port:           12345,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	assert.Error(t, err)
	assert.Nil(t, redisCache)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisCache_GetSetDelete(t *testing.T) {
	s, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, redisCache.Close()) }()

	t.Run("отсутствующий ключ дает пустую строку без ошибки", func(t *testing.T) {
		value, err := redisCache.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("записанное значение читается обратно", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "requests:feed", `[{"id":1}]`, 0))

		value, err := redisCache.Get(ctx, "requests:feed")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, value)

		// Нулевой TTL заменяется на TTL по умолчанию.
		ttl := s.TTL("requests:feed")
		assert.Greater(t, ttl.Seconds(), 0.0)
	})

	t.Run("удаленный ключ больше не читается", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "requests:feed", "[]", 0))
		require.NoError(t, redisCache.Delete(ctx, "requests:feed"))

		value, err := redisCache.Get(ctx, "requests:feed")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("явный TTL сохраняется", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "short-lived", "value", 5*time.Second))

		ttl := s.TTL("short-lived")
		assert.LessOrEqual(t, ttl.Seconds(), 5.0)
		assert.Greater(t, ttl.Seconds(), 0.0)
	})
}
