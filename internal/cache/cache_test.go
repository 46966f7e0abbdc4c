package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemory(t *testing.T) {
	c, err := New[string](Config{Backend: MemoryBackend})
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.(*MemoryCache[string])
	assert.True(t, ok, "expected *MemoryCache[string]")

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "foo", "bar", 0))
	v, err := c.Get(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", v)

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewEmptyBackendDefaultsToMemory(t *testing.T) {
	c, err := New[int](Config{})
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.(*MemoryCache[int])
	assert.True(t, ok)
}

func TestNewRedis(t *testing.T) {
	s := miniredis.RunT(t)

	c, err := New[string](Config{Backend: RedisBackend, RedisAddr: s.Addr(), Namespace: "test"})
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.(*RedisCache[string])
	assert.True(t, ok, "expected *RedisCache[string]")

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "foo", "baz", 0))
	v, err := c.Get(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, "baz", v)
	assert.True(t, s.Exists("test:foo"))
}

func TestNewUnknownBackend(t *testing.T) {
	c, err := New[int](Config{Backend: "something-else"})
	assert.Error(t, err)
	assert.Nil(t, c)
}
