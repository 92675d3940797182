package repository

import (
	"context"
	"database/sql"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// MovieRepo provides data access to the movies table.  The public
// catalog sees only active movies; the admin surface lists everything
// and drives the soft-delete/activate pair.
type MovieRepo struct {
	db *sql.DB
}

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

const movieCols = `movie_id, title, description, duration_minutes, genre, language,
	parental_rating, DATE_FORMAT(release_date, '%Y-%m-%d'), cast_names, crew_names,
	trailer_url, display_image_url, banner_image_url, rating, is_active, created_at, updated_at`

// ListActive returns the public catalog, newest releases first.
func (r *MovieRepo) ListActive(ctx context.Context) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieCols+` FROM movies WHERE is_active = 1 ORDER BY release_date DESC`)
}

// ListAll returns every movie, active or not, for the admin back office.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieCols+` FROM movies ORDER BY created_at DESC`)
}

// GetByID loads a single movie; ErrMovieNotFound when missing.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movieCols+` FROM movies WHERE movie_id = ?`, id)
	m, err := scanMovie(row)
	if err == sql.ErrNoRows {
		return nil, ErrMovieNotFound
	}
	return m, err
}

// Create inserts a movie and returns its ID.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO movies (title, description, duration_minutes, genre, language, parental_rating,
		   release_date, cast_names, crew_names, trailer_url, display_image_url, banner_image_url, rating, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		m.Title, m.Description, m.DurationMinutes, m.Genre, m.Language, m.ParentalRating,
		m.ReleaseDate, m.Cast, m.Crew, m.TrailerURL, m.DisplayImageURL, m.BannerImageURL, m.Rating,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites every editable column of a movie.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE movies SET title = ?, description = ?, duration_minutes = ?, genre = ?, language = ?,
		   parental_rating = ?, release_date = ?, cast_names = ?, crew_names = ?, trailer_url = ?,
		   display_image_url = ?, banner_image_url = ?, rating = ?
		 WHERE movie_id = ?`,
		m.Title, m.Description, m.DurationMinutes, m.Genre, m.Language, m.ParentalRating,
		m.ReleaseDate, m.Cast, m.Crew, m.TrailerURL, m.DisplayImageURL, m.BannerImageURL, m.Rating, m.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrMovieNotFound)
}

// SetActive flips the soft-delete flag; soft-delete and activate are
// distinct endpoints upstream but share this update.
func (r *MovieRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE movies SET is_active = ? WHERE movie_id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrMovieNotFound)
}

// SetRating stores the aggregate review rating shown on the catalog
// card.  Review writes recompute the average and push it here.
func (r *MovieRepo) SetRating(ctx context.Context, id uint64, rating float64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE movies SET rating = ? WHERE movie_id = ?`, rating, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrMovieNotFound)
}

// CountActive counts active movies for the dashboard.
func (r *MovieRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies WHERE is_active = 1`).Scan(&n)
	return n, err
}

func (r *MovieRepo) list(ctx context.Context, query string) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*model.Movie, error) {
	var m model.Movie
	var release sql.NullString
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.DurationMinutes, &m.Genre, &m.Language,
		&m.ParentalRating, &release, &m.Cast, &m.Crew, &m.TrailerURL, &m.DisplayImageURL,
		&m.BannerImageURL, &m.Rating, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.ReleaseDate = release.String
	return &m, nil
}

// affectedOr returns notFound when the statement matched no rows.
func affectedOr(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
