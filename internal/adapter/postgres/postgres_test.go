package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

func TestDecodeTargeting(t *testing.T) {
	tg, err := decodeTargeting([]byte(`{"geos":["US","CA"],"devices":["mobile"],"min_quality":0.4}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"US", "CA"}, tg.Geos)
	assert.Equal(t, []string{"mobile"}, tg.Devices)
	assert.InDelta(t, 0.4, tg.MinQuality, 1e-12)

	tg, err = decodeTargeting(nil)
	require.NoError(t, err)
	assert.True(t, tg.Matches("", "", 0), "empty targeting matches anything")

	_, err = decodeTargeting([]byte(`{"geos":`))
	assert.Error(t, err)
}

func TestFunnelStatsQuery(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	query, args := funnelStatsQuery(port.StatsReq{From: from, To: to})
	assert.Len(t, args, 2)
	assert.NotContains(t, query, "$3")
	assert.Contains(t, query, "outcome = 'invalid_traffic'")

	pub := int64(7)
	query, args = funnelStatsQuery(port.StatsReq{From: from, To: to, PublisherID: &pub})
	assert.Equal(t, []any{from, to, int64(7)}, args)
	assert.Contains(t, query, "publisher_id = $3")
}

func TestStageNames(t *testing.T) {
	assert.Equal(t, []string{"budget", "blocklist"}, stageNames([]domain.Stage{domain.StageBudget, domain.StageBlocklist}))
	assert.Empty(t, stageNames(nil))
}
