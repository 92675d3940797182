package repository

import (
	"context"
	"database/sql"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// ReviewRepo provides data access to the reviews table.  Reviews target
// either a movie or an event; the average-rating queries back the
// aggregate rating the catalog exposes.
type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

const reviewCols = `review_id, user_id, user_name, movie_id, event_id, review_type,
	rating, comment, created_at, updated_at`

// ListByMovie returns a movie's reviews newest first.
func (r *ReviewRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.Review, error) {
	return r.list(ctx, `SELECT `+reviewCols+` FROM reviews WHERE movie_id = ? ORDER BY created_at DESC`, movieID)
}

// ListByEvent returns an event's reviews newest first.
func (r *ReviewRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Review, error) {
	return r.list(ctx, `SELECT `+reviewCols+` FROM reviews WHERE event_id = ? ORDER BY created_at DESC`, eventID)
}

// GetByID loads a single review; ErrReviewNotFound when missing.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (*model.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reviewCols+` FROM reviews WHERE review_id = ?`, id)
	rev, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	return rev, err
}

// Create inserts a review and returns its ID.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (user_id, user_name, movie_id, event_id, review_type, rating, comment)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rev.UserID, rev.UserName, rev.MovieID, rev.EventID, rev.ReviewType, rev.Rating, rev.Comment,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a review's rating and comment; the target and author
// never change after creation.
func (r *ReviewRepo) Update(ctx context.Context, id uint64, rating float64, comment string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET rating = ?, comment = ? WHERE review_id = ?`, rating, comment, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrReviewNotFound)
}

// Delete removes a review permanently.  Reviews have no soft-delete;
// a withdrawn review should stop counting toward the aggregate.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE review_id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrReviewNotFound)
}

// AverageForMovie returns the mean rating across a movie's reviews, or
// zero when it has none.
func (r *ReviewRepo) AverageForMovie(ctx context.Context, movieID uint64) (float64, error) {
	var avg float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE movie_id = ?`, movieID).Scan(&avg)
	return avg, err
}

// AverageForEvent returns the mean rating across an event's reviews, or
// zero when it has none.
func (r *ReviewRepo) AverageForEvent(ctx context.Context, eventID uint64) (float64, error) {
	var avg float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE event_id = ?`, eventID).Scan(&avg)
	return avg, err
}

func (r *ReviewRepo) list(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rev)
	}
	return out, rows.Err()
}

func scanReview(row rowScanner) (*model.Review, error) {
	var rev model.Review
	var movieID, eventID sql.NullInt64
	err := row.Scan(&rev.ID, &rev.UserID, &rev.UserName, &movieID, &eventID, &rev.ReviewType,
		&rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if movieID.Valid {
		id := uint64(movieID.Int64)
		rev.MovieID = &id
	}
	if eventID.Valid {
		id := uint64(eventID.Int64)
		rev.EventID = &id
	}
	return &rev, nil
}
