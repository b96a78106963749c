// Package yield ranks eligible campaigns by expected revenue per thousand
// impressions (eCPM), adjusted by historical click-through rate.
package yield

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"adgate/internal/cache"
	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

const (
	// DefaultCTR is the cold-start click-through rate prior.
	DefaultCTR = 0.001
	// MinImpressions is the trailing volume below which the observed CTR is
	// ignored in favour of DefaultCTR.
	MinImpressions = 1000
	// MaxCPMBonus caps how far an above-baseline CTR can lift a CPM bid.
	MaxCPMBonus = 1.2
	// Lookback is the trailing CTR window.
	Lookback = 30 * 24 * time.Hour
	// CacheTTL is how long a CTR estimate is reused.
	CacheTTL = 6 * time.Hour

	defaultTimeout     = 200 * time.Millisecond
	defaultConcurrency = 8
)

// Ranker computes eCPM and orders candidates.
type Ranker struct {
	source      port.CTRSource
	cache       *cache.ReadThrough[port.CTRStats]
	now         func() time.Time
	timeout     time.Duration
	concurrency int
	logger      *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithTimeout bounds each CTR lookup. A lookup that runs out of time ranks
// the campaign at DefaultCTR.
func WithTimeout(d time.Duration) Option {
	return func(r *Ranker) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithConcurrency bounds how many CTR lookups Rank runs at once.
func WithConcurrency(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRanker returns a ranker reading trailing stats from source.
func NewRanker(source port.CTRSource, store port.CacheStore, logger *slog.Logger, opts ...Option) *Ranker {
	r := &Ranker{
		source:      source,
		now:         time.Now,
		timeout:     defaultTimeout,
		concurrency: defaultConcurrency,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cache = cache.New(store, "ctr:", CacheTTL,
		cache.WithLogger[port.CTRStats](logger), cache.WithLoadTimeout[port.CTRStats](r.timeout))
	return r
}

// CTR returns the campaign's trailing click-through rate, or DefaultCTR
// when there is too little data or the analytics store is unavailable or
// slower than the ranker timeout.
func (r *Ranker) CTR(ctx context.Context, campaignID int64) float64 {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	stats, err := r.cache.Get(ctx, strconv.FormatInt(campaignID, 10), func(ctx context.Context) (port.CTRStats, error) {
		return r.source.TrailingStats(ctx, campaignID, r.now().Add(-Lookback))
	})
	if err != nil {
		r.logger.Warn("ctr lookup failed, using default",
			slog.Int64("campaign_id", campaignID),
			slog.Any("error", err))
		return DefaultCTR
	}
	return EstimateCTR(stats)
}

// EstimateCTR applies the insufficient-data threshold.
func EstimateCTR(s port.CTRStats) float64 {
	if s.Impressions < MinImpressions {
		return DefaultCTR
	}
	return float64(s.Clicks) / float64(s.Impressions)
}

// ECPM returns the expected revenue per thousand impressions of c at the
// given CTR.
func ECPM(c *domain.Campaign, ctr float64) float64 {
	bid := c.BidAmount.InexactFloat64()
	switch c.BidModel {
	case domain.BidCPC:
		return bid * ctr * 1000
	default:
		return bid * min(ctr/DefaultCTR, MaxCPMBonus)
	}
}

// Rank scores every campaign and sorts by eCPM descending. Equal eCPM is
// broken by ascending campaign id so repeated runs give the same order.
func (r *Ranker) Rank(ctx context.Context, campaigns []domain.Campaign) []domain.RankedCampaign {
	ranked := make([]domain.RankedCampaign, len(campaigns))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i := range campaigns {
		g.Go(func() error {
			ctr := r.CTR(ctx, campaigns[i].ID)
			ranked[i] = domain.RankedCampaign{
				Campaign: campaigns[i],
				CTR:      ctr,
				ECPM:     ECPM(&campaigns[i], ctr),
			}
			return nil
		})
	}
	_ = g.Wait()
	Sort(ranked)
	return ranked
}

// Sort orders by eCPM descending, then campaign id ascending.
func Sort(ranked []domain.RankedCampaign) {
	slices.SortFunc(ranked, func(a, b domain.RankedCampaign) int {
		if c := cmp.Compare(b.ECPM, a.ECPM); c != 0 {
			return c
		}
		return cmp.Compare(a.Campaign.ID, b.Campaign.ID)
	})
}
