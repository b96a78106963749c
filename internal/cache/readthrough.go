// Package cache provides the read-through cache shared by every subsystem
// of the matching pipeline. Values are JSON encoded into a port.CacheStore
// so the same cache works against redis and the in-memory store.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"adgate/internal/core/port"
)

// DefaultLoadTimeout bounds a shared load when WithLoadTimeout is not set.
const DefaultLoadTimeout = 2 * time.Second

// ReadThrough caches values of type V under a key prefix for a fixed TTL.
// A failing cache store never fails a read: the loader result is returned
// and the cache error is logged.
type ReadThrough[V any] struct {
	store       port.CacheStore
	prefix      string
	ttl         time.Duration
	loadTimeout time.Duration
	cacheIf     func(V) bool
	logger      *slog.Logger
	group       singleflight.Group
	// generation changes on every Invalidate. A load that observes a
	// change while in flight returns its value but does not store it.
	generation atomic.Uint64
}

// Option configures a ReadThrough.
type Option[V any] func(*ReadThrough[V])

// WithLogger sets the logger used for cache store errors.
func WithLogger[V any](logger *slog.Logger) Option[V] {
	return func(c *ReadThrough[V]) { c.logger = logger }
}

// WithCacheIf stores a loaded value only when keep returns true.
func WithCacheIf[V any](keep func(V) bool) Option[V] {
	return func(c *ReadThrough[V]) { c.cacheIf = keep }
}

// WithLoadTimeout bounds each shared load independently of the callers
// waiting for it.
func WithLoadTimeout[V any](d time.Duration) Option[V] {
	return func(c *ReadThrough[V]) {
		if d > 0 {
			c.loadTimeout = d
		}
	}
}

// New returns a cache writing keys as prefix+key with the given TTL.
func New[V any](store port.CacheStore, prefix string, ttl time.Duration, opts ...Option[V]) *ReadThrough[V] {
	c := &ReadThrough[V]{
		store:       store,
		prefix:      prefix,
		ttl:         ttl,
		loadTimeout: DefaultLoadTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured time to live.
func (c *ReadThrough[V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached value for key, calling load on a miss. Concurrent
// misses for the same key share one load call. The shared load runs
// detached from any single caller's cancellation, bounded by the load
// timeout, while each caller stops waiting when its own ctx is done.
func (c *ReadThrough[V]) Get(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	full := c.prefix + key

	raw, ok, err := c.store.Load(ctx, full)
	switch {
	case err != nil:
		c.logger.Warn("cache load failed", slog.String("key", full), slog.Any("error", err))
	case ok:
		var v V
		if err = json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		c.logger.Warn("cache entry corrupt", slog.String("key", full), slog.Any("error", err))
	}

	ch := c.group.DoChan(full, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		gen := c.generation.Load()
		v, err := load(lctx)
		if err != nil {
			return nil, err
		}
		if (c.cacheIf == nil || c.cacheIf(v)) && c.generation.Load() == gen {
			c.put(lctx, full, v)
		}
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// Set stores v under key without consulting the loader.
func (c *ReadThrough[V]) Set(ctx context.Context, key string, v V) {
	c.put(ctx, c.prefix+key, v)
}

// Invalidate drops the given keys so the next Get reloads them.
func (c *ReadThrough[V]) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	c.generation.Add(1)
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
		c.group.Forget(full[i])
	}
	return c.store.Delete(ctx, full...)
}

func (c *ReadThrough[V]) put(ctx context.Context, full string, v V) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache encode failed", slog.String("key", full), slog.Any("error", err))
		return
	}
	if err = c.store.Store(ctx, full, data, c.ttl); err != nil {
		c.logger.Warn("cache store failed", slog.String("key", full), slog.Any("error", err))
	}
}
