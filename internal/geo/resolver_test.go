package geo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/adapter/memory"
	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

type fakeDB struct {
	calls   int
	records map[string]domain.GeoInfo
	err     error
}

func (f *fakeDB) Lookup(ip netip.Addr) (*domain.GeoInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.records[ip.String()]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeDB) Close() error { return nil }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveCachesSuccessfulLookups(t *testing.T) {
	db := &fakeDB{records: map[string]domain.GeoInfo{"8.8.8.8": {Country: "US", City: "Mountain View"}}}
	r := NewResolver(db, memory.NewStore(), discard())
	ctx := context.Background()
	ip := netip.MustParseAddr("8.8.8.8")

	assert.Equal(t, "US", r.Resolve(ctx, ip).Country)
	assert.Equal(t, "US", r.Resolve(ctx, ip).Country)
	assert.Equal(t, 1, db.calls)
}

func TestResolveUnknownIsNotCached(t *testing.T) {
	db := &fakeDB{records: map[string]domain.GeoInfo{}}
	r := NewResolver(db, memory.NewStore(), discard())
	ctx := context.Background()
	ip := netip.MustParseAddr("1.2.3.4")

	assert.False(t, r.Resolve(ctx, ip).Known())
	assert.False(t, r.Resolve(ctx, ip).Known())
	assert.Equal(t, 2, db.calls)
}

func TestResolveDegradesOnError(t *testing.T) {
	r := NewResolver(&fakeDB{err: errors.New("corrupt")}, memory.NewStore(), discard())
	assert.Equal(t, domain.GeoInfo{}, r.Resolve(context.Background(), netip.MustParseAddr("8.8.8.8")))
}

func TestNullDatabase(t *testing.T) {
	r := NewResolver(nil, memory.NewStore(), discard())
	assert.False(t, r.Available())
	assert.False(t, r.Resolve(context.Background(), netip.MustParseAddr("8.8.8.8")).Known())
}

func TestOpenFirst(t *testing.T) {
	want := &fakeDB{}
	open := func(path string) (port.GeoDatabase, error) {
		if path == "/good.mmdb" {
			return want, nil
		}
		return nil, errors.New("missing")
	}

	db := OpenFirst([]string{"/missing.mmdb", "", "/good.mmdb"}, open, discard())
	assert.Same(t, want, db)

	db = OpenFirst([]string{"/missing.mmdb"}, open, discard())
	require.IsType(t, NullDatabase{}, db)
}
