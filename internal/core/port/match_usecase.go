package port

import (
	"context"

	"adgate/internal/core/domain"
)

// MatchUseCase is the primary port into the decisioning core. Request
// handling layers call it as a library.
type MatchUseCase interface {
	// Match filters active campaigns down to those eligible for the slot
	// and returns them ranked best first. An empty result is a no-fill, not
	// an error. Only validation failures are returned as errors.
	Match(ctx context.Context, req domain.AdSlotRequest, opts MatchOptions) (*domain.MatchResult, error)

	// RecordImpression advances the advisory pacing and frequency counters
	// after an impression was delivered.
	RecordImpression(ctx context.Context, ev domain.ImpressionEvent) error

	// InvalidateCampaigns drops cached candidate sets after a campaign
	// mutation. An empty format drops all of them.
	InvalidateCampaigns(ctx context.Context, format domain.Format) error

	// InvalidateBlocklist drops cached blocklist verdicts after either party
	// edited its blocklist. A zero id means "any".
	InvalidateBlocklist(ctx context.Context, advertiserID, publisherID int64) error

	// FunnelStats returns aggregated funnel outcomes for a period.
	FunnelStats(ctx context.Context, req StatsReq) (*domain.FunnelStats, error)
}

// MatchOptions are per-call overrides of configured defaults.
type MatchOptions struct {
	// FrequencyCap overrides the impressions per (campaign, user) per 24h.
	// Zero keeps the configured default.
	FrequencyCap int
	// Limit truncates the ranked list. Zero returns all eligible campaigns.
	Limit int
}
