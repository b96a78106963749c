// Package geoip adapts MaxMind GeoLite2/GeoIP2 City databases to
// port.GeoDatabase.
package geoip

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/oschwald/geoip2-golang"

	"adgate/internal/core/domain"
)

// Reader is an opened MaxMind City database.
type Reader struct {
	db *geoip2.Reader
}

// Open memory-maps the database at path.
func Open(path string) (*Reader, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database %s: %w", path, err)
	}
	return &Reader{db: db}, nil
}

// Lookup returns the location of ip, or nil when the database has no
// country for it.
func (r *Reader) Lookup(ip netip.Addr) (*domain.GeoInfo, error) {
	rec, err := r.db.City(net.IP(ip.AsSlice()))
	if err != nil {
		return nil, err
	}
	if rec.Country.IsoCode == "" {
		return nil, nil
	}
	lat, lon := rec.Location.Latitude, rec.Location.Longitude
	return &domain.GeoInfo{
		Country:   rec.Country.IsoCode,
		City:      rec.City.Names["en"],
		Latitude:  &lat,
		Longitude: &lon,
	}, nil
}

// Close unmaps the database.
func (r *Reader) Close() error {
	return r.db.Close()
}
