package port

import (
	"context"
	"time"

	"adgate/internal/core/domain"
)

// CampaignRepository is the read-only view of the external campaign
// management system. Implementations must be safe for concurrent use.
type CampaignRepository interface {
	// ListActive returns active campaigns whose creative has the given
	// format.
	ListActive(ctx context.Context, format domain.Format) ([]domain.Campaign, error)
}

// PublisherRepository returns publisher profiles. A missing publisher is
// reported as domain.ErrNotFound.
type PublisherRepository interface {
	GetPublisher(ctx context.Context, id int64) (*domain.Publisher, error)
}

// BlocklistStore answers one direction of a brand-safety relation per call.
type BlocklistStore interface {
	// AdvertiserBlocksPublisher reports whether the advertiser blocks the
	// publisher by id, domain or category.
	AdvertiserBlocksPublisher(ctx context.Context, advertiserID, publisherID int64) (bool, error)
	// PublisherBlocksAdvertiser reports whether the publisher blocks the
	// advertiser by id, brand or category.
	PublisherBlocksAdvertiser(ctx context.Context, publisherID, advertiserID int64) (bool, error)
}

// CTRStats are trailing impression and click totals for a campaign.
type CTRStats struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
}

// CTRSource reads historical delivery totals from analytics storage.
type CTRSource interface {
	TrailingStats(ctx context.Context, campaignID int64, since time.Time) (CTRStats, error)
}

// AnalyticsSink receives one funnel record per validated request. It is
// write-only from the core's point of view.
type AnalyticsSink interface {
	Record(ctx context.Context, rec domain.FunnelRecord) error
}

// StatsReader aggregates funnel records for reporting.
type StatsReader interface {
	FunnelStats(ctx context.Context, req StatsReq) (*domain.FunnelStats, error)
}

// StatsReq selects a reporting period and, optionally, one publisher.
type StatsReq struct {
	From        time.Time
	To          time.Time
	PublisherID *int64
}
