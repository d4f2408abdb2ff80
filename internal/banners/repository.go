package banners

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bannerhub/bannerhub/internal/platform/db"
	"github.com/bannerhub/bannerhub/internal/shared"
)

// Repository defines persistence operations for the banner store.
type Repository interface {
	Upsert(ctx context.Context, banner Banner) (created bool, err error)
	Get(ctx context.Context, id string) (Banner, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	db db.DBTX
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(conn db.DBTX) *PGRepository {
	return &PGRepository{db: conn}
}

// xmax is zero only for a freshly inserted row version.
const upsertBanner = `INSERT INTO banners (id, title, description, timer, url)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    timer = EXCLUDED.timer,
    url = EXCLUDED.url,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

// Upsert inserts the banner or replaces every non-id field of the existing row.
func (r *PGRepository) Upsert(ctx context.Context, banner Banner) (bool, error) {
	var inserted bool
	err := r.db.QueryRow(ctx, upsertBanner, banner.ID, banner.Title, banner.Description, banner.Timer, banner.URL).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("banners: upsert %s: %w", banner.ID, err)
	}
	return inserted, nil
}

const selectBanner = `SELECT id, title, description, timer, url FROM banners WHERE id = $1`

// Get fetches a banner by id.
func (r *PGRepository) Get(ctx context.Context, id string) (Banner, error) {
	var b Banner
	err := r.db.QueryRow(ctx, selectBanner, id).Scan(&b.ID, &b.Title, &b.Description, &b.Timer, &b.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Banner{}, fmt.Errorf("banner %s: %w", id, shared.ErrNotFound)
		}
		return Banner{}, fmt.Errorf("banners: get %s: %w", id, err)
	}
	return b, nil
}

var _ Repository = (*PGRepository)(nil)
