package candidate

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
	"adgate/internal/core/domain"
	"adgate/internal/core/port/mocks"
)

func banner(id int64, w, h int) domain.Campaign {
	return domain.Campaign{
		ID:       id,
		Status:   domain.StatusActive,
		Creative: domain.Creative{Format: domain.FormatBanner, Width: w, Height: h},
	}
}

func newLoader(t *testing.T) (*Loader, *mocks.MockCampaignRepository) {
	t.Helper()
	repo := mocks.NewMockCampaignRepository(t)
	return NewLoader(repo, memory.NewStore(), 0, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestLoadFiltersStructurally(t *testing.T) {
	l, repo := newLoader(t)
	paused := banner(3, 300, 250)
	paused.Status = domain.StatusPaused
	video := banner(4, 300, 250)
	video.Creative.Format = domain.FormatVideo

	repo.EXPECT().ListActive(mock.Anything, domain.FormatBanner).
		Return([]domain.Campaign{banner(1, 300, 250), banner(2, 728, 90), paused, video}, nil).Once()

	got, err := l.Load(context.Background(), Slot{Format: "banner", Width: 300, Height: 250})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].ID)

	got, err = l.Load(context.Background(), Slot{Format: "banner"})
	require.NoError(t, err)
	assert.Len(t, got, 2, "dimensions are optional; served from cache")
}

func TestLoadInvalidFormat(t *testing.T) {
	l, _ := newLoader(t)
	_, err := l.Load(context.Background(), Slot{Format: "popup"})
	assert.True(t, domain.IsValidation(err))
}

func TestLoadFailsClosed(t *testing.T) {
	l, repo := newLoader(t)
	repo.EXPECT().ListActive(mock.Anything, domain.FormatNative).Return(nil, errors.New("db down")).Once()

	got, err := l.Load(context.Background(), Slot{Format: "native"})
	assert.Empty(t, got)
	var infra *domain.InfrastructureError
	require.ErrorAs(t, err, &infra)
	assert.Equal(t, domain.StageCandidates, infra.Stage)
}

func TestInvalidateReloads(t *testing.T) {
	l, repo := newLoader(t)
	ctx := context.Background()
	repo.EXPECT().ListActive(mock.Anything, domain.FormatBanner).Return([]domain.Campaign{banner(1, 0, 0)}, nil).Once()

	got, _ := l.Load(ctx, Slot{Format: "banner"})
	assert.Len(t, got, 1)

	require.NoError(t, l.InvalidateAll(ctx))
	repo.EXPECT().ListActive(mock.Anything, domain.FormatBanner).Return([]domain.Campaign{banner(1, 0, 0), banner(2, 0, 0)}, nil).Once()

	got, _ = l.Load(ctx, Slot{Format: "banner"})
	assert.Len(t, got, 2)
}
