package port

import (
	"context"
	"net/netip"
	"time"

	"adgate/internal/core/domain"
)

// CounterStore is the shared low-latency counter store. Single-key
// operations are atomic; nothing spans keys.
type CounterStore interface {
	// Get returns the counter value, or 0 when the key does not exist.
	Get(ctx context.Context, key string) (int64, error)
	// IncrBy adds delta and returns the new value, creating the key at 0.
	IncrBy(ctx context.Context, key string, delta int64) (int64, error)
	// IncrWithTTL adds delta like IncrBy and, in the same atomic step,
	// gives the key ttl when it has no expiry. An existing expiry is kept,
	// so a window starts at the first increment and is never extended.
	IncrWithTTL(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error)
}

// CacheStore holds opaque cached values with a time to live.
type CacheStore interface {
	// Load returns the value and true on a hit.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Store(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// SharedStore is what the redis and in-memory adapters provide.
type SharedStore interface {
	CounterStore
	CacheStore
}

// GeoDatabase is an offline IP geolocation database. Lookup returns nil
// without error for addresses the database has no record of.
type GeoDatabase interface {
	Lookup(ip netip.Addr) (*domain.GeoInfo, error)
	Close() error
}
