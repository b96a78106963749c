// Package givt screens requests for general invalid traffic: known
// crawlers, automation clients, non-routable source addresses and abusive
// request rates.
package givt

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"adgate/internal/cache"
	"adgate/internal/core/port"
)

// Signal names the check that classified a request.
type Signal string

const (
	SignalNone           Signal = ""
	SignalEmptyUserAgent Signal = "empty_user_agent"
	SignalKnownBot       Signal = "known_bot"
	SignalAutomation     Signal = "automation"
	SignalNonPublicIP    Signal = "non_public_ip"
	SignalRate           Signal = "rate"
)

const (
	// DefaultRateLimit is the requests per minute from one IP above which
	// traffic is flagged as abusive.
	DefaultRateLimit = 100
	rateWindow       = time.Minute
	verdictTTL       = time.Hour
	uaKeyLen         = 64
)

// Verdict is the combined classification of a request source.
type Verdict struct {
	Invalid bool   `json:"invalid"`
	Signal  Signal `json:"signal,omitempty"`
}

// Filter classifies requests. It is safe for concurrent use.
type Filter struct {
	counters  port.CounterStore
	verdicts  *cache.ReadThrough[Verdict]
	matcher   *matcher
	rateLimit int64
	logger    *slog.Logger
}

// Option configures a Filter.
type Option func(*Filter)

// WithRateLimit overrides DefaultRateLimit.
func WithRateLimit(perMinute int) Option {
	return func(f *Filter) {
		if perMinute > 0 {
			f.rateLimit = int64(perMinute)
		}
	}
}

// New builds a filter. counters and verdict cache usually share one store.
func New(counters port.CounterStore, verdicts port.CacheStore, rules Rules, logger *slog.Logger, opts ...Option) (*Filter, error) {
	m, err := rules.compile()
	if err != nil {
		return nil, err
	}
	f := &Filter{
		counters:  counters,
		verdicts:  cache.New(verdicts, "givt:v:", verdictTTL, cache.WithLogger[Verdict](logger)),
		matcher:   m,
		rateLimit: DefaultRateLimit,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Classify returns the verdict for a request from ip with user agent ua.
//
// The per-IP rate counter is incremented on every call, before anything
// else, so the rate reflects all traffic from the address. The static
// user-agent and address signals are cached per (ip, ua prefix) for an hour.
// The rate signal is evaluated on every call against the fresh count.
//
// A counter store error is returned together with the static verdict so
// the caller can apply its fail policy.
func (f *Filter) Classify(ctx context.Context, ip netip.Addr, ua string) (Verdict, error) {
	count, rateErr := f.countRequest(ctx, ip)

	v, err := f.verdicts.Get(ctx, verdictKey(ip, ua), func(context.Context) (Verdict, error) {
		return f.static(ip, ua), nil
	})
	if err != nil {
		return Verdict{}, err
	}
	if v.Invalid {
		return v, nil
	}
	if rateErr != nil {
		return v, fmt.Errorf("givt rate counter: %w", rateErr)
	}
	if count > f.rateLimit {
		return Verdict{Invalid: true, Signal: SignalRate}, nil
	}
	return v, nil
}

func (f *Filter) static(ip netip.Addr, ua string) Verdict {
	if sig, bad := f.matcher.userAgent(ua); bad {
		return Verdict{Invalid: true, Signal: sig}
	}
	if !PublicAddr(ip) {
		return Verdict{Invalid: true, Signal: SignalNonPublicIP}
	}
	return Verdict{}
}

func (f *Filter) countRequest(ctx context.Context, ip netip.Addr) (int64, error) {
	key := "givt:rate:" + ip.String()
	return f.counters.IncrWithTTL(ctx, key, 1, rateWindow)
}

// PublicAddr reports whether ip can belong to a human visitor on the public
// internet. Private, loopback, link-local and unspecified addresses cannot.
func PublicAddr(ip netip.Addr) bool {
	ip = ip.Unmap()
	return ip.IsValid() &&
		!ip.IsPrivate() &&
		!ip.IsLoopback() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsLinkLocalMulticast() &&
		!ip.IsUnspecified()
}

func verdictKey(ip netip.Addr, ua string) string {
	if len(ua) > uaKeyLen {
		ua = ua[:uaKeyLen]
	}
	return ip.String() + "|" + ua
}
