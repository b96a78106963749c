// Package candidate loads the structurally matching active campaigns for a
// slot from a short-lived cache of the campaign repository.
package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adgate/internal/cache"
	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

// DefaultTTL keeps budget and status changes visible within seconds.
const DefaultTTL = 5 * time.Second

// Slot is the structural part of a request a candidate must fit.
type Slot struct {
	PublisherID int64
	SlotID      string
	Format      domain.Format
	Width       int
	Height      int
}

// Loader reads candidates. It is safe for concurrent use.
type Loader struct {
	repo   port.CampaignRepository
	cache  *cache.ReadThrough[[]domain.Campaign]
	logger *slog.Logger
}

// NewLoader returns a loader caching repository reads for ttl; a
// non-positive ttl uses DefaultTTL.
func NewLoader(repo port.CampaignRepository, store port.CacheStore, ttl time.Duration, logger *slog.Logger) *Loader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Loader{
		repo:   repo,
		cache:  cache.New(store, "cand:", ttl, cache.WithLogger[[]domain.Campaign](logger)),
		logger: logger,
	}
}

// Load returns active campaigns fitting the slot, in repository order.
//
// An unknown format is a ValidationError. When the repository is
// unavailable Load fails closed: it returns no candidates together with an
// InfrastructureError so the caller can tell the outage apart from a
// legitimate no-fill.
func (l *Loader) Load(ctx context.Context, slot Slot) ([]domain.Campaign, error) {
	format, err := domain.ParseFormat(string(slot.Format))
	if err != nil {
		return nil, err
	}
	all, err := l.cache.Get(ctx, string(format), func(ctx context.Context) ([]domain.Campaign, error) {
		return l.repo.ListActive(ctx, format)
	})
	if err != nil {
		return nil, &domain.InfrastructureError{Stage: domain.StageCandidates, Err: fmt.Errorf("list active campaigns: %w", err)}
	}

	out := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if fits(&c, format, slot.Width, slot.Height) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Invalidate drops the cached set for one format.
func (l *Loader) Invalidate(ctx context.Context, format domain.Format) error {
	return l.cache.Invalidate(ctx, string(format))
}

// InvalidateAll drops every cached set.
func (l *Loader) InvalidateAll(ctx context.Context) error {
	keys := make([]string, len(domain.Formats))
	for i, f := range domain.Formats {
		keys[i] = string(f)
	}
	return l.cache.Invalidate(ctx, keys...)
}

// fits checks status and creative structure. Slot dimensions are only
// enforced when the request carries them.
func fits(c *domain.Campaign, format domain.Format, width, height int) bool {
	if c.Status != domain.StatusActive || c.Creative.Format != format {
		return false
	}
	if width > 0 && c.Creative.Width != width {
		return false
	}
	if height > 0 && c.Creative.Height != height {
		return false
	}
	return true
}
