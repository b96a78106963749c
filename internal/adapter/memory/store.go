// Package memory implements the shared counter and cache store in process.
// It backs single-instance deployments and tests; multi-instance
// deployments use the redis adapter so counters are shared.
package memory

import (
	"context"
	"strconv"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

type entry struct {
	counter   int64
	data      []byte
	isCounter bool
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Store implements port.SharedStore on an xsync map. Every operation is
// atomic per key.
type Store struct {
	m   *xsync.Map[string, entry]
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests that need expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		m:   xsync.NewMap[string, entry](),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the counter value for key or 0.
func (s *Store) Get(_ context.Context, key string) (int64, error) {
	e, ok := s.m.Load(key)
	if !ok || e.expired(s.now()) {
		return 0, nil
	}
	if e.isCounter {
		return e.counter, nil
	}
	return strconv.ParseInt(string(e.data), 10, 64)
}

// IncrBy atomically adds delta to key.
func (s *Store) IncrBy(_ context.Context, key string, delta int64) (int64, error) {
	return s.incr(key, delta, 0)
}

// IncrWithTTL adds delta to key and arms ttl when the key has no expiry.
func (s *Store) IncrWithTTL(_ context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	return s.incr(key, delta, ttl)
}

func (s *Store) incr(key string, delta int64, ttl time.Duration) (int64, error) {
	now := s.now()
	var err error
	e, _ := s.m.Compute(key, func(old entry, loaded bool) (entry, xsync.ComputeOp) {
		if !loaded || old.expired(now) {
			old = entry{isCounter: true}
		}
		if !old.isCounter {
			n, perr := strconv.ParseInt(string(old.data), 10, 64)
			if perr != nil {
				err = perr
				return old, xsync.CancelOp
			}
			old = entry{counter: n, isCounter: true, expiresAt: old.expiresAt}
		}
		old.counter += delta
		if ttl > 0 && old.expiresAt.IsZero() {
			old.expiresAt = now.Add(ttl)
		}
		return old, xsync.UpdateOp
	})
	if err != nil {
		return 0, err
	}
	return e.counter, nil
}

// Expire sets the TTL of an existing key. Missing keys are left missing.
func (s *Store) Expire(_ context.Context, key string, ttl time.Duration) error {
	now := s.now()
	s.m.Compute(key, func(old entry, loaded bool) (entry, xsync.ComputeOp) {
		if !loaded || old.expired(now) {
			return old, xsync.CancelOp
		}
		old.expiresAt = now.Add(ttl)
		return old, xsync.UpdateOp
	})
	return nil
}

// Load returns the cached bytes for key.
func (s *Store) Load(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.m.Load(key)
	if !ok || e.expired(s.now()) {
		return nil, false, nil
	}
	if e.isCounter {
		return []byte(strconv.FormatInt(e.counter, 10)), true, nil
	}
	return e.data, true, nil
}

// Store saves value under key. A non-positive ttl keeps it forever.
func (s *Store) Store(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{data: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.m.Store(key, e)
	return nil
}

// Delete removes keys.
func (s *Store) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		s.m.Delete(k)
	}
	return nil
}

// Sweep removes expired entries and returns how many were dropped.
func (s *Store) Sweep() int {
	now := s.now()
	var dropped int
	s.m.Range(func(key string, e entry) bool {
		if e.expired(now) {
			s.m.Compute(key, func(old entry, loaded bool) (entry, xsync.ComputeOp) {
				if loaded && old.expired(now) {
					dropped++
					return old, xsync.DeleteOp
				}
				return old, xsync.CancelOp
			})
		}
		return true
	})
	return dropped
}

// RunJanitor sweeps every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
