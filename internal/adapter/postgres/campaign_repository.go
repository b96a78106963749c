package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adgate/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const listActiveQuery = `
        SELECT
            c.id,
            c.advertiser_id,
            c.name,
            c.status,
            c.bid_model,
            c.bid_amount,
            c.total_budget,
            c.daily_budget,
            c.spent_budget,
            c.targeting,
            c.creative_url,
            c.creative_format,
            c.creative_width,
            c.creative_height,
            c.start_date,
            c.end_date,
            c.created_at,
            c.updated_at
        FROM campaigns c
        WHERE c.status = 'active'
          AND c.creative_format = $1
        ORDER BY c.id`

// ListActive returns active campaigns of the given creative format. Date
// windows and budgets are left to the eligibility stages.
func (r *CampaignRepository) ListActive(ctx context.Context, format domain.Format) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, listActiveQuery, string(format))
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c            domain.Campaign
		targetingRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.Name,
		&c.Status,
		&c.BidModel,
		&c.BidAmount,
		&c.TotalBudget,
		&c.DailyBudget,
		&c.SpentBudget,
		&targetingRaw,
		&c.Creative.URL,
		&c.Creative.Format,
		&c.Creative.Width,
		&c.Creative.Height,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Targeting, err = decodeTargeting(targetingRaw)
	if err != nil {
		return c, fmt.Errorf("campaign %d: %w", c.ID, err)
	}
	return c, nil
}

// decodeTargeting reads the jsonb targeting column. Empty documents mean
// "no restriction".
func decodeTargeting(raw []byte) (domain.Targeting, error) {
	var t domain.Targeting
	if len(raw) == 0 {
		return t, nil
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("decode targeting: %w", err)
	}
	return t, nil
}
