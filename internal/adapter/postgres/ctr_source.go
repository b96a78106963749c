package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adgate/internal/core/port"
)

// CTRSource implements port.CTRSource on the daily delivery rollup.
type CTRSource struct {
	pool *pgxpool.Pool
}

// NewCTRSource returns a new source instance.
func NewCTRSource(pool *pgxpool.Pool) *CTRSource {
	return &CTRSource{pool: pool}
}

// TrailingStats sums impressions and clicks of the campaign from since up
// to today.
func (s *CTRSource) TrailingStats(ctx context.Context, campaignID int64, since time.Time) (port.CTRStats, error) {
	var st port.CTRStats
	err := s.pool.QueryRow(ctx, `SELECT COALESCE(sum(impressions),0), COALESCE(sum(clicks),0)
FROM campaign_daily_stats WHERE campaign_id = $1 AND day >= $2::date`, campaignID, since.UTC()).
		Scan(&st.Impressions, &st.Clicks)
	if err != nil {
		return port.CTRStats{}, fmt.Errorf("trailing stats for campaign %d: %w", campaignID, err)
	}
	return st, nil
}
