package pacing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/adapter/memory"
	"adgate/internal/core/domain"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func campaign(daily int64) *domain.Campaign {
	return &domain.Campaign{ID: 7, DailyBudget: decimal.NewFromInt(daily)}
}

func fixedClock() func() time.Time {
	now := time.Date(2026, 5, 4, 13, 20, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func TestHourlyLimit(t *testing.T) {
	assert.True(t, HourlyLimit(decimal.NewFromInt(240)).Equal(decimal.NewFromInt(12)))
}

func TestHardPacing(t *testing.T) {
	ctx := context.Background()
	p := NewPacer(memory.NewStore(), WithClock(fixedClock()))
	c := campaign(240)

	d, err := p.Admit(ctx, c)
	require.NoError(t, err)
	assert.True(t, d.Admit)

	require.NoError(t, p.RecordSpend(ctx, c.ID, decimal.NewFromFloat(11.99)))
	d, err = p.Admit(ctx, c)
	require.NoError(t, err)
	assert.True(t, d.Admit)

	require.NoError(t, p.RecordSpend(ctx, c.ID, decimal.NewFromFloat(0.01)))
	d, err = p.Admit(ctx, c)
	require.NoError(t, err)
	assert.False(t, d.Admit)
	assert.Equal(t, domain.ReasonPacingLimit, d.Reason)
	assert.True(t, d.Spend.Equal(decimal.NewFromInt(12)))
}

func TestNoDailyBudgetAlwaysAdmits(t *testing.T) {
	p := NewPacer(memory.NewStore())
	d, err := p.Admit(context.Background(), &domain.Campaign{ID: 1})
	require.NoError(t, err)
	assert.True(t, d.Admit)
}

func TestSpendIsPerHour(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 13, 59, 0, 0, time.UTC)
	store := memory.NewStore(memory.WithClock(func() time.Time { return now }))
	p := NewPacer(store, WithClock(func() time.Time { return now }))
	c := campaign(240)

	require.NoError(t, p.RecordSpend(ctx, c.ID, decimal.NewFromInt(12)))
	d, _ := p.Admit(ctx, c)
	assert.False(t, d.Admit)

	now = now.Add(2 * time.Minute)
	d, _ = p.Admit(ctx, c)
	assert.True(t, d.Admit, "a new hour starts with zero spend")

	now = now.Add(2 * time.Hour)
	n, _ := store.Get(ctx, "pace:7:2026050413")
	assert.Zero(t, n, "old buckets expire")
}

func TestProbabilisticRamp(t *testing.T) {
	ctx := context.Background()
	c := campaign(240) // limit 12

	cases := []struct {
		name  string
		spend float64
		draw  float64
		admit bool
		why   domain.Reason
	}{
		{"below ramp", 9.0, 0.99, true, domain.ReasonEligible},
		{"mid ramp served", 10.8, 0.49, true, domain.ReasonEligible},
		{"mid ramp throttled", 10.8, 0.51, false, domain.ReasonPacingThrottled},
		{"at limit", 12.0, 0.0, false, domain.ReasonPacingLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPacer(memory.NewStore(), WithMode(ModeProbabilistic), WithRandom(fixedRand(tc.draw)), WithClock(fixedClock()))
			require.NoError(t, p.RecordSpend(ctx, c.ID, decimal.NewFromFloat(tc.spend)))

			d, err := p.Admit(ctx, c)
			require.NoError(t, err)
			assert.Equal(t, tc.admit, d.Admit)
			assert.Equal(t, tc.why, d.Reason)
		})
	}
}

type failingStore struct{ *memory.Store }

func (failingStore) Get(context.Context, string) (int64, error) { return 0, errors.New("down") }

func TestStoreErrorIsReturned(t *testing.T) {
	p := NewPacer(failingStore{})
	_, err := p.Admit(context.Background(), campaign(240))
	assert.Error(t, err)
}

func TestSpendBucketExpires(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 5, 4, 13, 20, 0, 0, time.UTC)
	now := start
	store := memory.NewStore(memory.WithClock(func() time.Time { return now }))
	p := NewPacer(store, WithClock(func() time.Time { return start }))

	require.NoError(t, p.RecordSpend(ctx, 7, decimal.RequireFromString("1.5")))
	require.NoError(t, p.RecordSpend(ctx, 7, decimal.RequireFromString("0.5")))
	n, _ := store.Get(ctx, key(7, start))
	assert.EqualValues(t, 2_000_000, n)

	now = now.Add(counterTTL)
	n, _ = store.Get(ctx, key(7, start))
	assert.Zero(t, n)
	assert.Equal(t, 1, store.Sweep())
}
