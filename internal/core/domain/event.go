package domain

import "github.com/shopspring/decimal"

// ImpressionEvent reports a delivered impression back to the core so the
// advisory pacing and frequency counters can advance. It is not a billing
// record.
type ImpressionEvent struct {
	CampaignID int64           `json:"campaign_id"`
	ClientIP   string          `json:"client_ip"`
	UserAgent  string          `json:"user_agent"`
	Cost       decimal.Decimal `json:"cost"`
}

// FunnelStats aggregates funnel records over a period.
type FunnelStats struct {
	Requests       int64 `json:"requests"`
	Filled         int64 `json:"filled"`
	NoFill         int64 `json:"no_fill"`
	Degraded       int64 `json:"degraded"`
	InvalidTraffic int64 `json:"invalid_traffic"`
}

// FillRate returns filled/requests, or 0 with no requests.
func (s FunnelStats) FillRate() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.Filled) / float64(s.Requests)
}
