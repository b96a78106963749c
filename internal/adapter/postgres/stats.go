package postgres

import (
	"context"
	"fmt"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

// FunnelStats returns aggregated outcomes for the period [From, To).
func (s *AnalyticsSink) FunnelStats(ctx context.Context, req port.StatsReq) (*domain.FunnelStats, error) {
	query, args := funnelStatsQuery(req)
	var st domain.FunnelStats
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&st.Requests, &st.Filled, &st.NoFill, &st.Degraded, &st.InvalidTraffic)
	if err != nil {
		return nil, fmt.Errorf("funnel stats: %w", err)
	}
	return &st, nil
}

func funnelStatsQuery(req port.StatsReq) (string, []any) {
	args := []any{req.From, req.To}
	wherePublisher := ""
	if req.PublisherID != nil {
		wherePublisher = "AND publisher_id = $3"
		args = append(args, *req.PublisherID)
	}
	query := fmt.Sprintf(`SELECT
    count(*),
    count(*) FILTER (WHERE outcome = '%s'),
    count(*) FILTER (WHERE outcome = '%s'),
    count(*) FILTER (WHERE outcome = '%s'),
    count(*) FILTER (WHERE outcome = '%s')
FROM ad_request_log WHERE created_at >= $1 AND created_at < $2 %s`,
		domain.OutcomeFilled, domain.OutcomeNoFill, domain.OutcomeDegraded, domain.OutcomeInvalidTraffic,
		wherePublisher)
	return query, args
}
