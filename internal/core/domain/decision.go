package domain

import "time"

// Outcome classifies a finished match for funnel reporting. A no-fill is a
// successful outcome; degraded means at least one dependency failed and a
// fail policy decided instead of the dependency.
type Outcome string

const (
	OutcomeFilled         Outcome = "filled"
	OutcomeNoFill         Outcome = "no_fill"
	OutcomeDegraded       Outcome = "degraded"
	OutcomeInvalidTraffic Outcome = "invalid_traffic"
)

// RankedCampaign is an eligible campaign with its expected yield.
type RankedCampaign struct {
	Campaign Campaign
	CTR      float64
	ECPM     float64
}

// StageCount is the number of candidates that survived a stage.
type StageCount struct {
	Stage     Stage `json:"stage"`
	Survivors int   `json:"survivors"`
}

// MatchResult is what Match returns: eligible campaigns best first, or an
// empty list for no-fill.
type MatchResult struct {
	RequestID string
	Outcome   Outcome
	Campaigns []RankedCampaign
	Geo       GeoInfo
	Funnel    []StageCount
	// Degraded lists the stages whose fail policy was applied.
	Degraded []Stage
}

// Winner returns the best campaign, if any.
func (r *MatchResult) Winner() (RankedCampaign, bool) {
	if r == nil || len(r.Campaigns) == 0 {
		return RankedCampaign{}, false
	}
	return r.Campaigns[0], true
}

// FunnelRecord is the telemetry written for every validated request.
type FunnelRecord struct {
	RequestID   string
	PublisherID int64
	SlotID      string
	Format      Format
	Geo         string
	Device      string
	Outcome     Outcome
	Reason      Reason
	WinnerID    *int64
	Candidates  int
	Funnel      []StageCount
	Degraded    []Stage
	CreatedAt   time.Time
}

// Filled reports whether the request produced a winner.
func (f FunnelRecord) Filled() bool {
	return f.Outcome == OutcomeFilled
}
