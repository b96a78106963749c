// Package blocklist enforces brand-safety relations in both directions:
// advertisers blocking publishers and publishers blocking advertisers.
package blocklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"adgate/internal/cache"
	"adgate/internal/core/port"
)

// CacheTTL is how long a verdict for one (advertiser, publisher) direction
// is cached before the store is read again.
const CacheTTL = 60 * time.Minute

// Enforcer answers whether an advertiser and a publisher may meet. Each
// direction is cached per pair; editing a blocklist invalidates it either
// per pair or for every pair of the editing party.
//
// Party-wide invalidation bumps a generation counter that is part of every
// cache key of that party, so stale entries are never read again and age
// out on their own.
type Enforcer struct {
	store       port.BlocklistStore
	generations port.CounterStore
	advertisers *cache.ReadThrough[bool]
	publishers  *cache.ReadThrough[bool]
	logger      *slog.Logger
}

// New returns an enforcer reading relations from store.
func New(store port.BlocklistStore, counters port.CounterStore, caches port.CacheStore, logger *slog.Logger) *Enforcer {
	return &Enforcer{
		store:       store,
		generations: counters,
		advertisers: cache.New(caches, "blk:a:", CacheTTL, cache.WithLogger[bool](logger)),
		publishers:  cache.New(caches, "blk:p:", CacheTTL, cache.WithLogger[bool](logger)),
		logger:      logger,
	}
}

// IsBlocked reports whether either direction blocks the pair. It is false
// only when neither relation exists and both reads succeeded; if one
// direction errors and the other does not block, the error is returned so
// the caller can apply its fail policy.
func (e *Enforcer) IsBlocked(ctx context.Context, advertiserID, publisherID int64) (bool, error) {
	advKey, pubKey, genErr := e.keys(ctx, advertiserID, publisherID)

	byAdvertiser, advErr := e.direction(ctx, e.advertisers, advKey, genErr, func(ctx context.Context) (bool, error) {
		return e.store.AdvertiserBlocksPublisher(ctx, advertiserID, publisherID)
	})
	if advErr == nil && byAdvertiser {
		return true, nil
	}

	byPublisher, pubErr := e.direction(ctx, e.publishers, pubKey, genErr, func(ctx context.Context) (bool, error) {
		return e.store.PublisherBlocksAdvertiser(ctx, publisherID, advertiserID)
	})
	if pubErr == nil && byPublisher {
		return true, nil
	}

	if err := errors.Join(advErr, pubErr); err != nil {
		return false, fmt.Errorf("blocklist %d/%d: %w", advertiserID, publisherID, err)
	}
	return false, nil
}

// direction reads one relation through its cache. Without a generation the
// cache key is unknown and the store is read directly.
func (e *Enforcer) direction(ctx context.Context, c *cache.ReadThrough[bool], key string, genErr error, load func(context.Context) (bool, error)) (bool, error) {
	if genErr != nil {
		return load(ctx)
	}
	return c.Get(ctx, key, load)
}

// InvalidatePair drops both cached directions of one pair.
func (e *Enforcer) InvalidatePair(ctx context.Context, advertiserID, publisherID int64) error {
	advKey, pubKey, err := e.keys(ctx, advertiserID, publisherID)
	if err != nil {
		return err
	}
	return errors.Join(
		e.advertisers.Invalidate(ctx, advKey),
		e.publishers.Invalidate(ctx, pubKey),
	)
}

// InvalidateAdvertiser drops every cached verdict of the advertiser's own
// blocklist.
func (e *Enforcer) InvalidateAdvertiser(ctx context.Context, advertiserID int64) error {
	_, err := e.generations.IncrBy(ctx, genKey("a", advertiserID), 1)
	return err
}

// InvalidatePublisher drops every cached verdict of the publisher's own
// blocklist.
func (e *Enforcer) InvalidatePublisher(ctx context.Context, publisherID int64) error {
	_, err := e.generations.IncrBy(ctx, genKey("p", publisherID), 1)
	return err
}

func (e *Enforcer) keys(ctx context.Context, advertiserID, publisherID int64) (string, string, error) {
	advGen, err := e.generations.Get(ctx, genKey("a", advertiserID))
	if err != nil {
		return "", "", err
	}
	pubGen, err := e.generations.Get(ctx, genKey("p", publisherID))
	if err != nil {
		return "", "", err
	}
	return pairKey(advertiserID, advGen, publisherID), pairKey(publisherID, pubGen, advertiserID), nil
}

func pairKey(owner, gen, other int64) string {
	return strconv.FormatInt(owner, 10) + "." + strconv.FormatInt(gen, 10) + ":" + strconv.FormatInt(other, 10)
}

func genKey(side string, id int64) string {
	return "blk:gen:" + side + ":" + strconv.FormatInt(id, 10)
}
