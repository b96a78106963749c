package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/adapter/memory"
)

type payload struct {
	N int `json:"n"`
}

func TestReadThroughCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	c := New[payload](memory.NewStore(), "t:", time.Minute)

	var calls int
	load := func(context.Context) (payload, error) {
		calls++
		return payload{N: calls}, nil
	}

	v, err := c.Get(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 1, v.N)

	v, err = c.Get(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 1, v.N)
	assert.Equal(t, 1, calls)

	require.NoError(t, c.Invalidate(ctx, "k"))
	v, err = c.Get(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, v.N)
}

func TestReadThroughExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.WithClock(func() time.Time { return now }))
	c := New[int](store, "t:", time.Minute)

	var calls int
	load := func(context.Context) (int, error) { calls++; return calls, nil }

	_, _ = c.Get(ctx, "k", load)
	now = now.Add(59 * time.Second)
	_, _ = c.Get(ctx, "k", load)
	assert.Equal(t, 1, calls)

	now = now.Add(time.Second)
	v, err := c.Get(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestReadThroughDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	c := New[int](memory.NewStore(), "t:", time.Minute)
	boom := errors.New("boom")

	_, err := c.Get(ctx, "k", func(context.Context) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)

	v, err := c.Get(ctx, "k", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestReadThroughCacheIf(t *testing.T) {
	ctx := context.Background()
	c := New[string](memory.NewStore(), "t:", time.Minute, WithCacheIf(func(s string) bool { return s != "" }))

	var calls int
	load := func(context.Context) (string, error) { calls++; return "", nil }
	_, _ = c.Get(ctx, "k", load)
	_, _ = c.Get(ctx, "k", load)
	assert.Equal(t, 2, calls)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("down")
}
func (failingStore) Store(context.Context, string, []byte, time.Duration) error {
	return errors.New("down")
}
func (failingStore) Delete(context.Context, ...string) error { return errors.New("down") }

func TestReadThroughSurvivesStoreFailure(t *testing.T) {
	c := New[int](failingStore{}, "t:", time.Minute)
	v, err := c.Get(context.Background(), "k", func(context.Context) (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestReadThroughCollapsesConcurrentMisses(t *testing.T) {
	c := New[int](memory.NewStore(), "t:", time.Minute)

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 1, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "k", load)
			assert.NoError(t, err)
			assert.Equal(t, 1, v)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestReadThroughWaiterOutlivesLeaderDeadline(t *testing.T) {
	c := New[payload](memory.NewStore(), "t:", time.Minute)

	var calls atomic.Int32
	started := make(chan struct{})
	load := func(ctx context.Context) (payload, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		select {
		case <-time.After(100 * time.Millisecond):
			return payload{N: 7}, nil
		case <-ctx.Done():
			return payload{}, ctx.Err()
		}
	}

	leaderErr := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := c.Get(ctx, "k", load)
		leaderErr <- err
	}()
	<-started

	v, err := c.Get(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, 7, v.N)
	assert.ErrorIs(t, <-leaderErr, context.DeadlineExceeded)
	assert.EqualValues(t, 1, calls.Load())

	v, err = c.Get(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, 7, v.N, "shared load was cached")
	assert.EqualValues(t, 1, calls.Load())
}

func TestReadThroughLoadTimeout(t *testing.T) {
	c := New[int](memory.NewStore(), "t:", time.Minute, WithLoadTimeout[int](30*time.Millisecond))

	start := time.Now()
	_, err := c.Get(context.Background(), "k", func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReadThroughInvalidateDuringLoad(t *testing.T) {
	ctx := context.Background()
	c := New[payload](memory.NewStore(), "t:", time.Minute)

	var calls atomic.Int32
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	load := func(context.Context) (payload, error) {
		n := calls.Add(1)
		if n == 1 {
			started <- struct{}{}
			<-release
		}
		return payload{N: int(n)}, nil
	}

	done := make(chan payload, 1)
	go func() {
		v, err := c.Get(ctx, "k", load)
		assert.NoError(t, err)
		done <- v
	}()
	<-started

	require.NoError(t, c.Invalidate(ctx, "k"))
	close(release)
	assert.Equal(t, 1, (<-done).N)

	v, err := c.Get(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, v.N, "value loaded before the invalidation is not cached")
	assert.EqualValues(t, 2, calls.Load())
}
