package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adgate/internal/blocklist"
	"adgate/internal/cache"
	"adgate/internal/candidate"
	"adgate/internal/core/domain"
	"adgate/internal/core/port"
	"adgate/internal/frequency"
	"adgate/internal/geo"
	"adgate/internal/givt"
	"adgate/internal/pacing"
	"adgate/internal/yield"
)

// Config holds the per-request limits of the matching pipeline.
type Config struct {
	// FrequencyCap is the default impressions per (campaign, user) per 24h.
	FrequencyCap int
	// StoreTimeout bounds each counter, cache, blocklist and geo call.
	StoreTimeout time.Duration
	// RepoTimeout bounds the campaign and publisher repository reads.
	RepoTimeout time.Duration
	// SinkTimeout bounds writing the funnel record.
	SinkTimeout time.Duration
	// Concurrency bounds the per-candidate checks run in parallel per stage.
	Concurrency int
	// PublisherTTL is how long publisher profiles are cached.
	PublisherTTL time.Duration
}

func (c *Config) setDefaults() {
	if c.FrequencyCap <= 0 {
		c.FrequencyCap = frequency.DefaultCap
	}
	if c.StoreTimeout <= 0 {
		c.StoreTimeout = 50 * time.Millisecond
	}
	if c.RepoTimeout <= 0 {
		c.RepoTimeout = 200 * time.Millisecond
	}
	if c.SinkTimeout <= 0 {
		c.SinkTimeout = 100 * time.Millisecond
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
	if c.PublisherTTL <= 0 {
		c.PublisherTTL = 5 * time.Minute
	}
}

// Deps are the collaborators of the use case. Every one is required except
// Stats, which only backs FunnelStats.
type Deps struct {
	Candidates *candidate.Loader
	Publishers port.PublisherRepository
	Cache      port.CacheStore
	Geo        *geo.Resolver
	Pacer      *pacing.Pacer
	Capper     *frequency.Capper
	Blocklist  *blocklist.Enforcer
	GIVT       *givt.Filter
	Ranker     *yield.Ranker
	Sink       port.AnalyticsSink
	Stats      port.StatsReader
}

// MatchUseCase implements port.MatchUseCase. It holds no mutable state of
// its own; every counter lives in the shared store.
type MatchUseCase struct {
	candidates *candidate.Loader
	publishers port.PublisherRepository
	pubCache   *cache.ReadThrough[domain.Publisher]
	geo        *geo.Resolver
	pacer      *pacing.Pacer
	capper     *frequency.Capper
	blocklist  *blocklist.Enforcer
	givt       *givt.Filter
	ranker     *yield.Ranker
	sink       port.AnalyticsSink
	stats      port.StatsReader

	cfg    Config
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a MatchUseCase.
type Option func(*MatchUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *MatchUseCase) { u.now = now }
}

// NewMatchUseCase wires the pipeline.
func NewMatchUseCase(deps Deps, cfg Config, logger *slog.Logger, opts ...Option) *MatchUseCase {
	cfg.setDefaults()
	pubCache := cache.New(deps.Cache, "pub:", cfg.PublisherTTL,
		cache.WithLogger[domain.Publisher](logger), cache.WithLoadTimeout[domain.Publisher](cfg.RepoTimeout))
	u := &MatchUseCase{
		candidates: deps.Candidates,
		publishers: deps.Publishers,
		pubCache:   pubCache,
		geo:        deps.Geo,
		pacer:      deps.Pacer,
		capper:     deps.Capper,
		blocklist:  deps.Blocklist,
		givt:       deps.GIVT,
		ranker:     deps.Ranker,
		sink:       deps.Sink,
		stats:      deps.Stats,
		cfg:        cfg,
		now:        time.Now,
		newID:      uuid.NewString,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type givtOutcome struct {
	verdict givt.Verdict
	err     error
}

// Match runs normalize, candidate loading, the eligibility stages and
// ranking, then records the funnel. Only validation failures are returned
// as errors; infrastructure failures are absorbed by the stage policies and
// show up as a degraded outcome.
func (u *MatchUseCase) Match(ctx context.Context, req domain.AdSlotRequest, opts port.MatchOptions) (*domain.MatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := &domain.MatchResult{RequestID: u.newID()}
	mc := u.normalize(ctx, req, opts, res)

	// The screen runs for every validated request so the per-IP rate
	// counter sees all traffic, even when no candidate survives.
	screened := make(chan givtOutcome, 1)
	go func() {
		sctx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
		defer cancel()
		v, err := u.givt.Classify(sctx, mc.addr, req.UserAgent)
		screened <- givtOutcome{verdict: v, err: err}
	}()

	survivors := u.loadCandidates(ctx, mc, res)
	var reason domain.Reason

	for _, st := range u.stages() {
		var stageReason domain.Reason
		survivors, stageReason = u.runStage(ctx, st, mc, survivors, res)
		if len(survivors) == 0 && reason == "" {
			reason = stageReason
		}
		res.Funnel = append(res.Funnel, domain.StageCount{Stage: st.name, Survivors: len(survivors)})
	}

	screen := <-screened
	invalid := false
	verdict := applyPolicy(domain.StageInvalidTraffic, invalidTrafficResult(screen.verdict), screen.err)
	if screen.err != nil {
		u.degrade(res, domain.StageInvalidTraffic, screen.err, slog.String("ip", mc.addr.String()))
	}
	if !verdict.Eligible {
		invalid = true
		survivors = nil
		reason = domain.ReasonInvalidTraffic
	}
	res.Funnel = append(res.Funnel, domain.StageCount{Stage: domain.StageInvalidTraffic, Survivors: len(survivors)})

	rctx, cancel := context.WithTimeout(ctx, u.cfg.RepoTimeout)
	res.Campaigns = u.ranker.Rank(rctx, survivors)
	cancel()
	if opts.Limit > 0 && len(res.Campaigns) > opts.Limit {
		res.Campaigns = res.Campaigns[:opts.Limit]
	}

	switch {
	case len(res.Campaigns) > 0:
		res.Outcome = domain.OutcomeFilled
		reason = domain.ReasonEligible
	case invalid:
		res.Outcome = domain.OutcomeInvalidTraffic
	case len(res.Degraded) > 0:
		res.Outcome = domain.OutcomeDegraded
	default:
		res.Outcome = domain.OutcomeNoFill
	}
	if reason == "" {
		reason = domain.ReasonNoCandidates
	}

	u.record(ctx, mc, res, reason)
	return res, nil
}

// normalize resolves everything the stages need once per request.
func (u *MatchUseCase) normalize(ctx context.Context, req domain.AdSlotRequest, opts port.MatchOptions, res *domain.MatchResult) *matchContext {
	mc := &matchContext{
		req:          req,
		addr:         req.Addr(),
		country:      req.Geo,
		frequencyCap: u.cfg.FrequencyCap,
		at:           u.now(),
	}
	if opts.FrequencyCap > 0 {
		mc.frequencyCap = opts.FrequencyCap
	}
	mc.fingerprint = frequency.Fingerprint(mc.addr.String(), req.UserAgent)

	gctx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	mc.geo = u.geo.Resolve(gctx, mc.addr)
	cancel()
	if mc.country == "" {
		mc.country = mc.geo.Country
	}
	res.Geo = mc.geo

	pub, err := u.publisher(ctx, req.PublisherID)
	if err != nil {
		u.degrade(res, domain.StagePublisher, err, slog.Int64("publisher_id", req.PublisherID))
	} else {
		mc.quality = pub.QualityScore
	}
	return mc
}

// publisher returns the cached publisher profile. Unknown publishers are
// cached too, as a zero-quality profile, so repeated requests naming a
// missing id do not reach the repository.
func (u *MatchUseCase) publisher(ctx context.Context, id int64) (domain.Publisher, error) {
	ctx, cancel := context.WithTimeout(ctx, u.cfg.RepoTimeout)
	defer cancel()
	return u.pubCache.Get(ctx, strconv.FormatInt(id, 10), func(ctx context.Context) (domain.Publisher, error) {
		p, err := u.publishers.GetPublisher(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			u.logger.Debug("unknown publisher", slog.Int64("publisher_id", id))
			return domain.Publisher{ID: id}, nil
		}
		if err != nil {
			return domain.Publisher{}, err
		}
		return *p, nil
	})
}

func (u *MatchUseCase) loadCandidates(ctx context.Context, mc *matchContext, res *domain.MatchResult) []domain.Campaign {
	lctx, cancel := context.WithTimeout(ctx, u.cfg.RepoTimeout)
	defer cancel()
	list, err := u.candidates.Load(lctx, candidate.Slot{
		PublisherID: mc.req.PublisherID,
		SlotID:      mc.req.SlotID,
		Format:      mc.req.Format,
		Width:       mc.req.Width,
		Height:      mc.req.Height,
	})
	if err != nil {
		u.degrade(res, domain.StageCandidates, err, slog.String("format", string(mc.req.Format)))
		list = nil
	}
	res.Funnel = append(res.Funnel, domain.StageCount{Stage: domain.StageCandidates, Survivors: len(list)})
	return list
}

// runStage checks every candidate, applies the stage policy to store
// errors and returns the survivors in their original order together with
// the most frequent rejection reason.
func (u *MatchUseCase) runStage(ctx context.Context, st candidateStage, mc *matchContext, in []domain.Campaign, res *domain.MatchResult) ([]domain.Campaign, domain.Reason) {
	if len(in) == 0 {
		return in, ""
	}
	results := make([]domain.StageResult, len(in))
	errs := make([]error, len(in))

	if st.local {
		for i := range in {
			results[i], errs[i] = st.check(ctx, mc, &in[i])
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(u.cfg.Concurrency)
		for i := range in {
			g.Go(func() error {
				cctx, cancel := context.WithTimeout(gctx, u.cfg.StoreTimeout)
				defer cancel()
				results[i], errs[i] = st.check(cctx, mc, &in[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	out := in[:0:0]
	rejected := map[domain.Reason]int{}
	var firstErr error
	failures := 0
	for i := range in {
		if errs[i] != nil {
			failures++
			if firstErr == nil {
				firstErr = errs[i]
			}
		}
		r := applyPolicy(st.name, results[i], errs[i])
		if r.Eligible {
			out = append(out, in[i])
			continue
		}
		rejected[r.Reason]++
	}
	if failures > 0 {
		u.degrade(res, st.name, firstErr, slog.Int("failures", failures), slog.Int("candidates", len(in)))
	}
	return out, dominant(rejected)
}

// dominant returns the most frequent reason, ties broken by name.
func dominant(counts map[domain.Reason]int) domain.Reason {
	var best domain.Reason
	for r, n := range counts {
		if n > counts[best] || (n == counts[best] && r < best) {
			best = r
		}
	}
	return best
}

func invalidTrafficResult(v givt.Verdict) domain.StageResult {
	if v.Invalid {
		return domain.Reject(domain.ReasonInvalidTraffic)
	}
	return domain.Pass()
}

// degrade logs an infrastructure error for stage and marks the match.
func (u *MatchUseCase) degrade(res *domain.MatchResult, stage domain.Stage, err error, attrs ...slog.Attr) {
	for _, s := range res.Degraded {
		if s == stage {
			return
		}
	}
	res.Degraded = append(res.Degraded, stage)

	policy, ok := stagePolicies[stage]
	if !ok {
		policy = domain.FailClosed
	}
	args := []any{
		slog.String("request_id", res.RequestID),
		slog.String("stage", string(stage)),
		slog.String("policy", string(policy)),
		slog.Any("error", &domain.InfrastructureError{Stage: stage, Err: err}),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	u.logger.Warn("infrastructure error", args...)
}

func (u *MatchUseCase) record(ctx context.Context, mc *matchContext, res *domain.MatchResult, reason domain.Reason) {
	rec := domain.FunnelRecord{
		RequestID:   res.RequestID,
		PublisherID: mc.req.PublisherID,
		SlotID:      mc.req.SlotID,
		Format:      mc.req.Format,
		Geo:         mc.country,
		Device:      mc.req.Device,
		Outcome:     res.Outcome,
		Reason:      reason,
		Funnel:      res.Funnel,
		Degraded:    res.Degraded,
		CreatedAt:   mc.at,
	}
	if w, ok := res.Winner(); ok {
		id := w.Campaign.ID
		rec.WinnerID = &id
	}
	if len(res.Funnel) > 0 {
		rec.Candidates = res.Funnel[0].Survivors
	}

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.SinkTimeout)
	defer cancel()
	if err := u.sink.Record(sctx, rec); err != nil {
		u.logger.Warn("funnel record failed",
			slog.String("request_id", res.RequestID),
			slog.Any("error", err))
	}
}

// RecordImpression advances frequency and pacing counters for a delivered
// impression. Both updates are attempted; their errors are joined.
func (u *MatchUseCase) RecordImpression(ctx context.Context, ev domain.ImpressionEvent) error {
	if ev.CampaignID <= 0 {
		return &domain.ValidationError{Field: "campaign_id", Message: "is required"}
	}
	addr, err := netip.ParseAddr(ev.ClientIP)
	if err != nil {
		return &domain.ValidationError{Field: "client_ip", Message: "is not a valid IP address"}
	}
	if ev.Cost.IsNegative() {
		return &domain.ValidationError{Field: "cost", Message: "must not be negative"}
	}

	ctx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	defer cancel()

	fp := frequency.Fingerprint(addr.Unmap().String(), ev.UserAgent)
	_, freqErr := u.capper.Record(ctx, ev.CampaignID, fp)
	paceErr := u.pacer.RecordSpend(ctx, ev.CampaignID, ev.Cost)
	return errors.Join(freqErr, paceErr)
}

// InvalidateCampaigns drops cached candidate sets.
func (u *MatchUseCase) InvalidateCampaigns(ctx context.Context, format domain.Format) error {
	if format == "" {
		return u.candidates.InvalidateAll(ctx)
	}
	f, err := domain.ParseFormat(string(format))
	if err != nil {
		return err
	}
	return u.candidates.Invalidate(ctx, f)
}

// InvalidateBlocklist drops cached blocklist verdicts for a pair, or for
// every pair of one party when the other id is zero.
func (u *MatchUseCase) InvalidateBlocklist(ctx context.Context, advertiserID, publisherID int64) error {
	switch {
	case advertiserID > 0 && publisherID > 0:
		return u.blocklist.InvalidatePair(ctx, advertiserID, publisherID)
	case advertiserID > 0:
		return u.blocklist.InvalidateAdvertiser(ctx, advertiserID)
	case publisherID > 0:
		return u.blocklist.InvalidatePublisher(ctx, publisherID)
	default:
		return &domain.ValidationError{Field: "advertiser_id/publisher_id", Message: "at least one is required"}
	}
}

// FunnelStats returns aggregated outcomes for a period.
func (u *MatchUseCase) FunnelStats(ctx context.Context, req port.StatsReq) (*domain.FunnelStats, error) {
	if u.stats == nil {
		return nil, fmt.Errorf("funnel stats: no stats reader configured")
	}
	if !req.To.After(req.From) {
		return nil, &domain.ValidationError{Field: "from/to", Message: "from must be before to"}
	}
	return u.stats.FunnelStats(ctx, req)
}
