package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"adgate/internal/core/domain"
)

// AnalyticsSink implements port.AnalyticsSink by appending to
// ad_request_log. It also serves funnel statistics from the same table.
type AnalyticsSink struct {
	pool *pgxpool.Pool
}

// NewAnalyticsSink returns a new sink instance.
func NewAnalyticsSink(pool *pgxpool.Pool) *AnalyticsSink {
	return &AnalyticsSink{pool: pool}
}

// Record inserts one funnel record.
func (s *AnalyticsSink) Record(ctx context.Context, rec domain.FunnelRecord) error {
	funnel, err := json.Marshal(rec.Funnel)
	if err != nil {
		return fmt.Errorf("encode funnel: %w", err)
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO ad_request_log
(request_id, publisher_id, slot_id, format, geo, device, outcome, reason, winner_id, candidates, funnel, degraded, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		rec.RequestID, rec.PublisherID, rec.SlotID, string(rec.Format), rec.Geo, rec.Device,
		string(rec.Outcome), string(rec.Reason), rec.WinnerID, rec.Candidates, funnel,
		stageNames(rec.Degraded), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert request log %s: %w", rec.RequestID, err)
	}
	return nil
}

func stageNames(stages []domain.Stage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = string(s)
	}
	return out
}
