package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BlocklistStore implements port.BlocklistStore. Each call answers one
// direction of the relation in a single round trip.
type BlocklistStore struct {
	pool *pgxpool.Pool
}

// NewBlocklistStore returns a new store instance.
func NewBlocklistStore(pool *pgxpool.Pool) *BlocklistStore {
	return &BlocklistStore{pool: pool}
}

// An advertiser blocks a publisher by id, by the publisher's domain or by
// its category.
const advertiserBlocksQuery = `
        SELECT EXISTS (
            SELECT 1
            FROM advertiser_blocklist b
            JOIN publishers p ON p.id = $2
            WHERE b.advertiser_id = $1
              AND (b.publisher_id = p.id
                OR (b.domain <> '' AND lower(b.domain) = lower(p.domain))
                OR (b.category <> '' AND lower(b.category) = lower(p.category)))
        )`

// A publisher blocks an advertiser by id, by the advertiser's brand or by
// its category.
const publisherBlocksQuery = `
        SELECT EXISTS (
            SELECT 1
            FROM publisher_blocklist b
            JOIN advertisers a ON a.id = $2
            WHERE b.publisher_id = $1
              AND (b.advertiser_id = a.id
                OR (b.brand <> '' AND lower(b.brand) = lower(a.brand))
                OR (b.category <> '' AND lower(b.category) = lower(a.category)))
        )`

// AdvertiserBlocksPublisher reports whether the advertiser's blocklist
// covers the publisher.
func (s *BlocklistStore) AdvertiserBlocksPublisher(ctx context.Context, advertiserID, publisherID int64) (bool, error) {
	var blocked bool
	if err := s.pool.QueryRow(ctx, advertiserBlocksQuery, advertiserID, publisherID).Scan(&blocked); err != nil {
		return false, fmt.Errorf("advertiser %d blocklist: %w", advertiserID, err)
	}
	return blocked, nil
}

// PublisherBlocksAdvertiser reports whether the publisher's blocklist
// covers the advertiser.
func (s *BlocklistStore) PublisherBlocksAdvertiser(ctx context.Context, publisherID, advertiserID int64) (bool, error) {
	var blocked bool
	if err := s.pool.QueryRow(ctx, publisherBlocksQuery, publisherID, advertiserID).Scan(&blocked); err != nil {
		return false, fmt.Errorf("publisher %d blocklist: %w", publisherID, err)
	}
	return blocked, nil
}
