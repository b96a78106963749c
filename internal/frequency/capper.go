// Package frequency caps how often one user sees one campaign. Users are
// identified only by an opaque fingerprint; neither the IP nor the user
// agent is stored.
package frequency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"adgate/internal/core/port"
)

const (
	// DefaultCap is the impressions per (campaign, fingerprint) per Window.
	DefaultCap = 3
	// Window is the lifetime of a counter, started by its first impression.
	Window = 24 * time.Hour
)

// Fingerprint returns the one-way digest identifying a user on a device.
func Fingerprint(ip, userAgent string) string {
	sum := sha256.Sum256([]byte(ip + "\x00" + userAgent))
	return hex.EncodeToString(sum[:])
}

// Capper reads and advances frequency counters. A counter is a soft cap:
// concurrent requests may both pass a check just below the cap.
type Capper struct {
	store      port.CounterStore
	defaultCap int
}

// NewCapper returns a capper with the given default cap; non-positive
// values fall back to DefaultCap.
func NewCapper(store port.CounterStore, defaultCap int) *Capper {
	if defaultCap <= 0 {
		defaultCap = DefaultCap
	}
	return &Capper{store: store, defaultCap: defaultCap}
}

// DefaultCap returns the configured cap.
func (c *Capper) DefaultCap() int {
	return c.defaultCap
}

// Capped reports whether the fingerprint already reached limit impressions
// of the campaign. A non-positive limit uses the default cap.
func (c *Capper) Capped(ctx context.Context, campaignID int64, fingerprint string, limit int) (bool, error) {
	if limit <= 0 {
		limit = c.defaultCap
	}
	n, err := c.store.Get(ctx, key(campaignID, fingerprint))
	if err != nil {
		return false, fmt.Errorf("read frequency counter: %w", err)
	}
	return n >= int64(limit), nil
}

// Count returns the current impression count.
func (c *Capper) Count(ctx context.Context, campaignID int64, fingerprint string) (int64, error) {
	return c.store.Get(ctx, key(campaignID, fingerprint))
}

// Record counts one delivered impression. The first impression starts the
// Window; later ones do not extend it.
func (c *Capper) Record(ctx context.Context, campaignID int64, fingerprint string) (int64, error) {
	n, err := c.store.IncrWithTTL(ctx, key(campaignID, fingerprint), 1, Window)
	if err != nil {
		return 0, fmt.Errorf("increment frequency counter: %w", err)
	}
	return n, nil
}

func key(campaignID int64, fingerprint string) string {
	return "freq:" + strconv.FormatInt(campaignID, 10) + ":" + fingerprint
}
