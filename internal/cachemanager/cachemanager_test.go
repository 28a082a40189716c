package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "answer", 42, time.Minute)
	v, ok := c.Get(ctx, "answer")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)

	c.Set(ctx, "a", "1", time.Minute)
	c.Set(ctx, "b", "2", time.Minute)

	require.NoError(t, c.Delete(ctx, "a", "missing"))
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, c.Flush(ctx))
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)

	c.Set(ctx, "short", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get(ctx, "short")
	assert.False(t, ok)
}

func TestReadThroughCache_FillsOnMiss(t *testing.T) {
	ctx := context.Background()
	manager := NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)

	calls := 0
	rtc := NewReadThroughCache[string, int, int](
		manager,
		func(ctx context.Context, input int) (int, error) {
			calls++
			return input * 2, nil
		},
		false,
	)

	v, err := rtc.Get(ctx, "k", 21, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	// Second read served from cache.
	v, err = rtc.Get(ctx, "k", 21, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestReadThroughCache_SkipCache(t *testing.T) {
	ctx := context.Background()
	manager := NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)

	calls := 0
	rtc := NewReadThroughCache[string, int, int](
		manager,
		func(ctx context.Context, input int) (int, error) {
			calls++
			return input, nil
		},
		true,
	)

	for i := 0; i < 3; i++ {
		_, err := rtc.Get(ctx, "k", 7, time.Minute)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

func TestReadThroughCache_LoaderErrorNotCached(t *testing.T) {
	ctx := context.Background()
	manager := NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)

	boom := errors.New("boom")
	fail := true
	rtc := NewReadThroughCache[string, int, int](
		manager,
		func(ctx context.Context, input int) (int, error) {
			if fail {
				return 0, boom
			}
			return input, nil
		},
		false,
	)

	_, err := rtc.Get(ctx, "k", 5, time.Minute)
	require.ErrorIs(t, err, boom)

	fail = false
	v, err := rtc.Get(ctx, "k", 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
