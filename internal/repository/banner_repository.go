package repository

import (
	"context"
	"database/sql"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// BannerRepo provides data access to the banners table backing the
// homepage carousel.
type BannerRepo struct {
	db *sql.DB
}

func NewBannerRepo(db *sql.DB) *BannerRepo { return &BannerRepo{db: db} }

const bannerCols = `banner_id, title, subtitle, movie_id, event_id, banner_image_url,
	display_order, link_url, is_active, created_at, updated_at`

// ListActive returns the live carousel in display order.
func (r *BannerRepo) ListActive(ctx context.Context) ([]model.Banner, error) {
	return r.list(ctx, `SELECT `+bannerCols+` FROM banners WHERE is_active = 1 ORDER BY display_order, banner_id`)
}

// ListAll returns every banner, inactive ones included, for the back
// office.
func (r *BannerRepo) ListAll(ctx context.Context) ([]model.Banner, error) {
	return r.list(ctx, `SELECT `+bannerCols+` FROM banners ORDER BY display_order, banner_id`)
}

// GetByID loads a single banner; ErrBannerNotFound when missing.
func (r *BannerRepo) GetByID(ctx context.Context, id uint64) (*model.Banner, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bannerCols+` FROM banners WHERE banner_id = ?`, id)
	b, err := scanBanner(row)
	if err == sql.ErrNoRows {
		return nil, ErrBannerNotFound
	}
	return b, err
}

// Create inserts a banner and returns its ID.
func (r *BannerRepo) Create(ctx context.Context, b *model.Banner) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO banners (title, subtitle, movie_id, event_id, banner_image_url, display_order, link_url, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		b.Title, b.Subtitle, b.MovieID, b.EventID, b.BannerImageURL, b.DisplayOrder, b.LinkURL,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a banner's editable columns.
func (r *BannerRepo) Update(ctx context.Context, b *model.Banner) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE banners SET title = ?, subtitle = ?, movie_id = ?, event_id = ?,
		   banner_image_url = ?, display_order = ?, link_url = ?
		 WHERE banner_id = ?`,
		b.Title, b.Subtitle, b.MovieID, b.EventID, b.BannerImageURL, b.DisplayOrder, b.LinkURL, b.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrBannerNotFound)
}

// SetActive flips a banner in or out of the carousel.
func (r *BannerRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE banners SET is_active = ? WHERE banner_id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrBannerNotFound)
}

func (r *BannerRepo) list(ctx context.Context, query string) ([]model.Banner, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func scanBanner(row rowScanner) (*model.Banner, error) {
	var b model.Banner
	var movieID, eventID sql.NullInt64
	err := row.Scan(&b.ID, &b.Title, &b.Subtitle, &movieID, &eventID, &b.BannerImageURL,
		&b.DisplayOrder, &b.LinkURL, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if movieID.Valid {
		id := uint64(movieID.Int64)
		b.MovieID = &id
	}
	if eventID.Valid {
		id := uint64(eventID.Int64)
		b.EventID = &id
	}
	return &b, nil
}
