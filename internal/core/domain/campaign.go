package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign. Only active
// campaigns are ever loaded as candidates.
type CampaignStatus string

const (
	StatusDraft  CampaignStatus = "draft"
	StatusActive CampaignStatus = "active"
	StatusPaused CampaignStatus = "paused"
	StatusEnded  CampaignStatus = "ended"
)

// BidModel says how a campaign pays: per thousand impressions or per click.
type BidModel string

const (
	BidCPM BidModel = "CPM"
	BidCPC BidModel = "CPC"
)

// Campaign represents an advertising campaign as seen by the decisioning
// core. It is owned by the advertiser and mutated only by the external
// management system; the core treats it as a read-only snapshot.
// Money fields are decimal amounts in the account currency.
type Campaign struct {
	ID           int64
	AdvertiserID int64
	Name         string
	Status       CampaignStatus
	BidModel     BidModel
	BidAmount    decimal.Decimal
	TotalBudget  decimal.Decimal
	DailyBudget  decimal.Decimal // zero means no daily budget
	SpentBudget  decimal.Decimal
	Targeting    Targeting
	Creative     Creative
	StartDate    *time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasDailyBudget reports whether pacing applies to the campaign.
func (c *Campaign) HasDailyBudget() bool {
	return c.DailyBudget.IsPositive()
}

// WithinWindow reports whether at falls inside [StartDate, EndDate].
// Unset bounds are open.
func (c *Campaign) WithinWindow(at time.Time) bool {
	if c.StartDate != nil && at.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && at.After(*c.EndDate) {
		return false
	}
	return true
}

// Creative describes the asset a campaign serves.
type Creative struct {
	URL    string `json:"url"`
	Format Format `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
