// Package geo resolves client IPs to a location. Resolution never fails:
// without a database, or on any lookup error, the location is unknown and
// targeting treats the request as matching only campaigns with no geo
// restriction.
package geo

import (
	"context"
	"log/slog"
	"net/netip"
	"time"

	"adgate/internal/cache"
	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

// CacheTTL is how long a successful lookup is cached. IP to location
// mappings change slowly.
const CacheTTL = 24 * time.Hour

// NullDatabase resolves every address to unknown.
type NullDatabase struct{}

func (NullDatabase) Lookup(netip.Addr) (*domain.GeoInfo, error) { return nil, nil }
func (NullDatabase) Close() error                               { return nil }

// Opener opens a database file.
type Opener func(path string) (port.GeoDatabase, error)

// OpenFirst tries every candidate path in order and returns the first
// database that opens. When none does it returns NullDatabase.
func OpenFirst(paths []string, open Opener, logger *slog.Logger) port.GeoDatabase {
	for _, p := range paths {
		if p == "" {
			continue
		}
		db, err := open(p)
		if err != nil {
			logger.Debug("geoip candidate unavailable", slog.String("path", p), slog.Any("error", err))
			continue
		}
		logger.Info("geoip database loaded", slog.String("path", p))
		return db
	}
	logger.Warn("no geoip database available, geo resolution disabled", slog.Any("paths", paths))
	return NullDatabase{}
}

// Resolver looks up and caches client locations.
type Resolver struct {
	db     port.GeoDatabase
	cache  *cache.ReadThrough[domain.GeoInfo]
	logger *slog.Logger
}

// NewResolver returns a resolver over db. A nil db behaves as NullDatabase.
func NewResolver(db port.GeoDatabase, store port.CacheStore, logger *slog.Logger) *Resolver {
	if db == nil {
		db = NullDatabase{}
	}
	return &Resolver{
		db: db,
		cache: cache.New(store, "geo:", CacheTTL,
			cache.WithLogger[domain.GeoInfo](logger),
			cache.WithCacheIf(domain.GeoInfo.Known),
		),
		logger: logger,
	}
}

// Available reports whether a real database is loaded.
func (r *Resolver) Available() bool {
	_, null := r.db.(NullDatabase)
	return !null
}

// Resolve returns the location of ip, or the zero GeoInfo when unknown.
func (r *Resolver) Resolve(ctx context.Context, ip netip.Addr) domain.GeoInfo {
	if !ip.IsValid() || !r.Available() {
		return domain.GeoInfo{}
	}
	info, err := r.cache.Get(ctx, ip.String(), func(ctx context.Context) (domain.GeoInfo, error) {
		return r.lookup(ctx, ip)
	})
	if err != nil {
		r.logger.Warn("geo lookup failed",
			slog.String("stage", string(domain.StageGeo)),
			slog.String("ip", ip.String()),
			slog.Any("error", err))
		return domain.GeoInfo{}
	}
	return info
}

func (r *Resolver) lookup(ctx context.Context, ip netip.Addr) (domain.GeoInfo, error) {
	type result struct {
		info *domain.GeoInfo
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		info, err := r.db.Lookup(ip)
		ch <- result{info, err}
	}()
	select {
	case <-ctx.Done():
		return domain.GeoInfo{}, ctx.Err()
	case res := <-ch:
		if res.err != nil || res.info == nil {
			return domain.GeoInfo{}, res.err
		}
		return *res.info, nil
	}
}

// Close releases the database.
func (r *Resolver) Close() error {
	return r.db.Close()
}
