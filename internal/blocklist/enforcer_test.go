package blocklist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adgate/internal/adapter/memory"
	"adgate/internal/core/port/mocks"
)

func newEnforcer(t *testing.T) (*Enforcer, *mocks.MockBlocklistStore) {
	t.Helper()
	store := mocks.NewMockBlocklistStore(t)
	shared := memory.NewStore()
	return New(store, shared, shared, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestIsBlockedEitherDirection(t *testing.T) {
	ctx := context.Background()

	t.Run("advertiser blocks", func(t *testing.T) {
		e, store := newEnforcer(t)
		store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

		blocked, err := e.IsBlocked(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("publisher blocks", func(t *testing.T) {
		e, store := newEnforcer(t)
		store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
		store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, int64(2), int64(1)).Return(true, nil).Once()

		blocked, err := e.IsBlocked(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("neither", func(t *testing.T) {
		e, store := newEnforcer(t)
		store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
		store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, int64(2), int64(1)).Return(false, nil).Once()

		blocked, err := e.IsBlocked(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, blocked)
	})
}

func TestIsBlockedStoreError(t *testing.T) {
	ctx := context.Background()
	down := errors.New("down")

	t.Run("error without block is reported", func(t *testing.T) {
		e, store := newEnforcer(t)
		store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(false, down).Once()
		store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, int64(2), int64(1)).Return(false, nil).Once()

		blocked, err := e.IsBlocked(ctx, 1, 2)
		assert.ErrorIs(t, err, down)
		assert.False(t, blocked)
	})

	t.Run("block wins over error", func(t *testing.T) {
		e, store := newEnforcer(t)
		store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(false, down).Once()
		store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, int64(2), int64(1)).Return(true, nil).Once()

		blocked, err := e.IsBlocked(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, blocked)
	})
}

func TestVerdictsAreCached(t *testing.T) {
	ctx := context.Background()
	e, store := newEnforcer(t)
	store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, int64(2), int64(1)).Return(false, nil).Once()

	for i := 0; i < 3; i++ {
		blocked, err := e.IsBlocked(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, blocked)
	}
}

func TestInvalidatePairForcesFreshRead(t *testing.T) {
	ctx := context.Background()
	e, store := newEnforcer(t)
	store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, int64(2), int64(1)).Return(false, nil).Once()

	blocked, err := e.IsBlocked(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, blocked)

	// The advertiser adds the publisher to its blocklist.
	require.NoError(t, e.InvalidatePair(ctx, 1, 2))
	store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

	blocked, err = e.IsBlocked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestInvalidatePartyForcesFreshRead(t *testing.T) {
	ctx := context.Background()
	e, store := newEnforcer(t)
	store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), mock.Anything).Return(false, nil).Times(2)
	store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, mock.Anything, int64(1)).Return(false, nil).Times(2)

	_, _ = e.IsBlocked(ctx, 1, 2)
	_, _ = e.IsBlocked(ctx, 1, 3)

	require.NoError(t, e.InvalidatePublisher(ctx, 3))
	store.EXPECT().PublisherBlocksAdvertiser(mock.Anything, int64(3), int64(1)).Return(true, nil).Once()

	blocked, err := e.IsBlocked(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = e.IsBlocked(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, blocked, "other publishers keep their cached verdict")

	require.NoError(t, e.InvalidateAdvertiser(ctx, 1))
	store.EXPECT().AdvertiserBlocksPublisher(mock.Anything, int64(1), int64(2)).Return(true, nil).Once()
	blocked, err = e.IsBlocked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, blocked)
}
