package usecase

import (
	"context"
	"net/netip"
	"time"

	"adgate/internal/core/domain"
)

// stagePolicies declares what each stage does when its store fails.
// Budget and frequency protect advertiser money and fail closed; blocklist
// and invalid-traffic protect publisher revenue and fail open. Targeting
// and the date window never touch a store.
var stagePolicies = map[domain.Stage]domain.FailPolicy{
	domain.StageTargeting:      domain.FailClosed,
	domain.StageDateWindow:     domain.FailClosed,
	domain.StageBudget:         domain.FailClosed,
	domain.StageFrequency:      domain.FailClosed,
	domain.StageBlocklist:      domain.FailOpen,
	domain.StageInvalidTraffic: domain.FailOpen,
}

// applyPolicy turns a stage error into a verdict.
func applyPolicy(stage domain.Stage, res domain.StageResult, err error) domain.StageResult {
	if err == nil {
		return res
	}
	if stagePolicies[stage] == domain.FailOpen {
		return domain.Pass()
	}
	return domain.Reject(domain.ReasonStoreError)
}

// matchContext is the normalised request shared by every stage.
type matchContext struct {
	req          domain.AdSlotRequest
	addr         netip.Addr
	geo          domain.GeoInfo
	country      string
	quality      float64
	fingerprint  string
	frequencyCap int
	at           time.Time
}

// candidateStage is one per-candidate eligibility check. Local stages only
// look at the candidate and the request and run inline.
type candidateStage struct {
	name  domain.Stage
	local bool
	check func(ctx context.Context, mc *matchContext, c *domain.Campaign) (domain.StageResult, error)
}

// stages returns the eligibility pipeline in its fixed order, cheapest and
// most selective first. The invalid-traffic screen is request-wide and is
// applied by Match after these.
func (u *MatchUseCase) stages() []candidateStage {
	return []candidateStage{
		{name: domain.StageTargeting, local: true, check: checkTargeting},
		{name: domain.StageDateWindow, local: true, check: checkDateWindow},
		{name: domain.StageBudget, check: u.checkBudget},
		{name: domain.StageFrequency, check: u.checkFrequency},
		{name: domain.StageBlocklist, check: u.checkBlocklist},
	}
}

func checkTargeting(_ context.Context, mc *matchContext, c *domain.Campaign) (domain.StageResult, error) {
	if !c.Targeting.Matches(mc.country, mc.req.Device, mc.quality) {
		return domain.Reject(domain.ReasonTargetingMismatch), nil
	}
	return domain.Pass(), nil
}

func checkDateWindow(_ context.Context, mc *matchContext, c *domain.Campaign) (domain.StageResult, error) {
	if !c.WithinWindow(mc.at) {
		return domain.Reject(domain.ReasonOutsideWindow), nil
	}
	return domain.Pass(), nil
}

func (u *MatchUseCase) checkBudget(ctx context.Context, _ *matchContext, c *domain.Campaign) (domain.StageResult, error) {
	if !c.SpentBudget.LessThan(c.TotalBudget) {
		return domain.Reject(domain.ReasonBudgetExhausted), nil
	}
	if !c.HasDailyBudget() {
		return domain.Pass(), nil
	}
	d, err := u.pacer.Admit(ctx, c)
	if err != nil {
		return domain.StageResult{}, err
	}
	if !d.Admit {
		return domain.Reject(d.Reason), nil
	}
	return domain.Pass(), nil
}

func (u *MatchUseCase) checkFrequency(ctx context.Context, mc *matchContext, c *domain.Campaign) (domain.StageResult, error) {
	capped, err := u.capper.Capped(ctx, c.ID, mc.fingerprint, mc.frequencyCap)
	if err != nil {
		return domain.StageResult{}, err
	}
	if capped {
		return domain.Reject(domain.ReasonFrequencyCapped), nil
	}
	return domain.Pass(), nil
}

func (u *MatchUseCase) checkBlocklist(ctx context.Context, mc *matchContext, c *domain.Campaign) (domain.StageResult, error) {
	blocked, err := u.blocklist.IsBlocked(ctx, c.AdvertiserID, mc.req.PublisherID)
	if err != nil {
		return domain.StageResult{}, err
	}
	if blocked {
		return domain.Reject(domain.ReasonBlocked), nil
	}
	return domain.Pass(), nil
}
