// Package pacing spreads a campaign's daily budget across the hours of the
// day. Hourly spend is an advisory counter in the shared store; the
// authoritative ledger lives elsewhere.
package pacing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

// Mode selects how the hourly limit is enforced.
type Mode string

const (
	// ModeHard excludes a campaign once hourly spend reaches the limit.
	ModeHard Mode = "hard"
	// ModeProbabilistic ramps the serve probability down from 80% to 100%
	// of the limit instead of cutting off at once.
	ModeProbabilistic Mode = "probabilistic"
)

var (
	hoursPerDay = decimal.NewFromInt(24)
	burstFactor = decimal.NewFromFloat(1.2)
)

const (
	rampStart  = 0.8
	rampWidth  = 1 - rampStart
	microShift = 6
	counterTTL = 2 * time.Hour
)

// Random is the source for the probabilistic ramp. *rand.Rand from
// math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

type lockedRand struct {
	mu sync.Mutex
	r  Random
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Decision is the pacing verdict for one campaign.
type Decision struct {
	Admit       bool
	Reason      domain.Reason
	Spend       decimal.Decimal
	Limit       decimal.Decimal
	Utilization float64
}

// Pacer admits campaigns according to their hourly spend.
type Pacer struct {
	store port.CounterStore
	mode  Mode
	rnd   Random
	now   func() time.Time
}

// Option configures a Pacer.
type Option func(*Pacer)

// WithMode selects hard or probabilistic pacing.
func WithMode(m Mode) Option {
	return func(p *Pacer) {
		if m == ModeProbabilistic {
			p.mode = m
		}
	}
}

// WithRandom injects the random source used by the probabilistic ramp.
func WithRandom(r Random) Option {
	return func(p *Pacer) { p.rnd = &lockedRand{r: r} }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Pacer) { p.now = now }
}

// NewPacer returns a hard pacer unless configured otherwise.
func NewPacer(store port.CounterStore, opts ...Option) *Pacer {
	p := &Pacer{
		store: store,
		mode:  ModeHard,
		rnd:   globalRand{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// HourlyLimit is daily/24 plus a 20% burst allowance.
func HourlyLimit(daily decimal.Decimal) decimal.Decimal {
	return daily.Div(hoursPerDay).Mul(burstFactor)
}

// Admit decides whether c may serve in the current hour. Campaigns without
// a daily budget are always admitted.
func (p *Pacer) Admit(ctx context.Context, c *domain.Campaign) (Decision, error) {
	if !c.HasDailyBudget() {
		return Decision{Admit: true, Reason: domain.ReasonEligible}, nil
	}
	spend, err := p.HourlySpend(ctx, c.ID)
	if err != nil {
		return Decision{}, err
	}
	d := Decision{Spend: spend, Limit: HourlyLimit(c.DailyBudget)}
	d.Utilization = d.Spend.Div(d.Limit).InexactFloat64()

	switch {
	case d.Spend.GreaterThanOrEqual(d.Limit):
		d.Reason = domain.ReasonPacingLimit
	case p.mode == ModeHard || d.Utilization < rampStart:
		d.Admit, d.Reason = true, domain.ReasonEligible
	case p.rnd.Float64() < (1-d.Utilization)/rampWidth:
		d.Admit, d.Reason = true, domain.ReasonEligible
	default:
		d.Reason = domain.ReasonPacingThrottled
	}
	return d, nil
}

// HourlySpend returns the spend recorded for the campaign this hour.
func (p *Pacer) HourlySpend(ctx context.Context, campaignID int64) (decimal.Decimal, error) {
	micros, err := p.store.Get(ctx, key(campaignID, p.now()))
	if err != nil {
		return decimal.Zero, fmt.Errorf("read hourly spend: %w", err)
	}
	return decimal.New(micros, -microShift), nil
}

// RecordSpend adds amount to the current hour's spend. The counter lives
// through the current and the next hour and is never cleared explicitly.
func (p *Pacer) RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	micros := amount.Shift(microShift).Round(0).IntPart()
	if _, err := p.store.IncrWithTTL(ctx, key(campaignID, p.now()), micros, counterTTL); err != nil {
		return fmt.Errorf("increment hourly spend: %w", err)
	}
	return nil
}

func key(campaignID int64, at time.Time) string {
	return "pace:" + strconv.FormatInt(campaignID, 10) + ":" + at.UTC().Format("2006010215")
}
