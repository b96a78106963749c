package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, "adgate:"), mr
}

func TestCounterRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	n, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.IncrBy(ctx, "c", 4)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.True(t, mr.Exists("adgate:c"))

	require.NoError(t, s.Expire(ctx, "c", time.Minute))
	mr.FastForward(time.Minute)

	n, err = s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIncrWithTTL(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	n, err := s.IncrWithTTL(ctx, "c", 2, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Equal(t, time.Hour, mr.TTL("adgate:c"))

	mr.FastForward(30 * time.Minute)
	n, err = s.IncrWithTTL(ctx, "c", 3, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.Equal(t, 30*time.Minute, mr.TTL("adgate:c"), "existing expiry is kept")

	mr.FastForward(30 * time.Minute)
	assert.False(t, mr.Exists("adgate:c"))
}

func TestIncrWithTTLArmsMissingExpiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	_, err := s.IncrBy(ctx, "c", 7)
	require.NoError(t, err)
	assert.Zero(t, mr.TTL("adgate:c"))

	n, err := s.IncrWithTTL(ctx, "c", 1, time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 8, n)
	assert.Equal(t, time.Minute, mr.TTL("adgate:c"))
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Store(ctx, "k", []byte(`{"a":1}`), time.Hour))
	b, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(b))

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, _ = s.Load(ctx, "k")
	assert.False(t, ok)
}

func TestUnavailable(t *testing.T) {
	s, mr := newTestStore(t)
	mr.Close()

	_, err := s.IncrBy(context.Background(), "c", 1)
	assert.Error(t, err)
}
