package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adgate/internal/core/domain"
)

// PublisherRepository implements port.PublisherRepository.
type PublisherRepository struct {
	pool *pgxpool.Pool
}

// NewPublisherRepository returns a new repository instance.
func NewPublisherRepository(pool *pgxpool.Pool) *PublisherRepository {
	return &PublisherRepository{pool: pool}
}

// GetPublisher returns a publisher by id.
func (r *PublisherRepository) GetPublisher(ctx context.Context, id int64) (*domain.Publisher, error) {
	var p domain.Publisher
	err := r.pool.QueryRow(ctx, `SELECT id, domain, category, quality_score FROM publishers WHERE id = $1`, id).
		Scan(&p.ID, &p.Domain, &p.Category, &p.QualityScore)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get publisher %d: %w", id, err)
	}
	return &p, nil
}
