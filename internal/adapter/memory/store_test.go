package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	n, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.IncrBy(ctx, "c", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = s.IncrBy(ctx, "c", 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	n, err = s.Get(ctx, "c")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(WithClock(func() time.Time { return now }))

	_, _ = s.IncrBy(ctx, "c", 1)
	require.NoError(t, s.Expire(ctx, "c", time.Minute))
	require.NoError(t, s.Store(ctx, "v", []byte("x"), time.Minute))

	now = now.Add(time.Minute)
	n, _ := s.Get(ctx, "c")
	assert.Zero(t, n)
	_, ok, _ := s.Load(ctx, "v")
	assert.False(t, ok)

	n, _ = s.IncrBy(ctx, "c", 1)
	assert.EqualValues(t, 1, n, "expired counter restarts")

	assert.Equal(t, 1, s.Sweep())
}

func TestIncrWithTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(WithClock(func() time.Time { return now }))

	n, err := s.IncrWithTTL(ctx, "c", 1, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	now = now.Add(30 * time.Minute)
	n, err = s.IncrWithTTL(ctx, "c", 1, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	now = now.Add(30 * time.Minute)
	n, _ = s.Get(ctx, "c")
	assert.Zero(t, n, "window starts at the first increment")
}

func TestIncrWithTTLArmsMissingExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(WithClock(func() time.Time { return now }))

	_, _ = s.IncrBy(ctx, "c", 5)
	n, err := s.IncrWithTTL(ctx, "c", 1, time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)

	now = now.Add(time.Minute)
	n, _ = s.Get(ctx, "c")
	assert.Zero(t, n)
}

func TestExpireMissingKey(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Expire(ctx, "nope", time.Minute))
	_, ok, _ := s.Load(ctx, "nope")
	assert.False(t, ok)
}

func TestLoadStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Store(ctx, "k", []byte("hello"), 0))
	b, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", string(b))

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, _ = s.Load(ctx, "k")
	assert.False(t, ok)
}

func TestConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_, _ = s.IncrBy(ctx, "c", 1)
			}
		}()
	}
	wg.Wait()

	n, _ := s.Get(ctx, "c")
	assert.EqualValues(t, 1000, n)
}
