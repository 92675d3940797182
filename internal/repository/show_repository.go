package repository

import (
	"context"
	"database/sql"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// ShowRepo provides data access to the shows table.  Shows reference a
// movie or an event (never both) plus a venue and screen; availability
// counters are adjusted inside the booking and payment transactions.
type ShowRepo struct {
	db *sql.DB
}

func NewShowRepo(db *sql.DB) *ShowRepo { return &ShowRepo{db: db} }

const showCols = `show_id, movie_id, event_id, venue_id, screen_id,
	DATE_FORMAT(show_date, '%Y-%m-%d'), TIME_FORMAT(show_time, '%H:%i:%s'),
	base_price, total_seats, available_seats, is_active, created_at, updated_at`

// GetByID loads one show; ErrShowNotFound when missing.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+showCols+` FROM shows WHERE show_id = ?`, id)
	s, err := scanShow(row)
	if err == sql.ErrNoRows {
		return nil, ErrShowNotFound
	}
	return s, err
}

// ListByMovieAndDate returns a movie's active shows on one date, in
// start-time order.  This is the showtime picker query.
func (r *ShowRepo) ListByMovieAndDate(ctx context.Context, movieID uint64, date string) ([]model.Show, error) {
	return r.list(ctx,
		`SELECT `+showCols+` FROM shows
		 WHERE movie_id = ? AND show_date = ? AND is_active = 1
		 ORDER BY show_time ASC`, movieID, date)
}

// ListByEventAndDate returns an event's active seated shows on one date.
func (r *ShowRepo) ListByEventAndDate(ctx context.Context, eventID uint64, date string) ([]model.Show, error) {
	return r.list(ctx,
		`SELECT `+showCols+` FROM shows
		 WHERE event_id = ? AND show_date = ? AND is_active = 1
		 ORDER BY show_time ASC`, eventID, date)
}

// DatesForMovie returns the distinct upcoming dates a movie plays on.
func (r *ShowRepo) DatesForMovie(ctx context.Context, movieID uint64) ([]string, error) {
	return r.dates(ctx,
		`SELECT DISTINCT DATE_FORMAT(show_date, '%Y-%m-%d') FROM shows
		 WHERE movie_id = ? AND is_active = 1 AND show_date >= CURDATE()
		 ORDER BY 1 ASC`, movieID)
}

// DatesForEvent returns the distinct upcoming dates of an event's
// seated shows.
func (r *ShowRepo) DatesForEvent(ctx context.Context, eventID uint64) ([]string, error) {
	return r.dates(ctx,
		`SELECT DISTINCT DATE_FORMAT(show_date, '%Y-%m-%d') FROM shows
		 WHERE event_id = ? AND is_active = 1 AND show_date >= CURDATE()
		 ORDER BY 1 ASC`, eventID)
}

// ListAll returns every show for the admin back office, newest first.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.Show, error) {
	return r.list(ctx, `SELECT `+showCols+` FROM shows ORDER BY show_date DESC, show_time DESC`)
}

// Create inserts a show and returns its ID.  Seat counters start at
// zero until seats are generated.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO shows (movie_id, event_id, venue_id, screen_id, show_date, show_time,
		   base_price, total_seats, available_seats, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		s.MovieID, s.EventID, s.VenueID, s.ScreenID, s.ShowDate, s.ShowTime,
		s.BasePrice, s.TotalSeats, s.AvailableSeats,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites the schedule and pricing columns of a show.
func (r *ShowRepo) Update(ctx context.Context, s *model.Show) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shows SET movie_id = ?, event_id = ?, venue_id = ?, screen_id = ?,
		   show_date = ?, show_time = ?, base_price = ?
		 WHERE show_id = ?`,
		s.MovieID, s.EventID, s.VenueID, s.ScreenID, s.ShowDate, s.ShowTime, s.BasePrice, s.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrShowNotFound)
}

// SetActive flips the soft-delete flag.
func (r *ShowRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE shows SET is_active = ? WHERE show_id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrShowNotFound)
}

// SetSeatCounts records the generated seat totals for a show.
func (r *ShowRepo) SetSeatCounts(ctx context.Context, id uint64, total, available int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shows SET total_seats = ?, available_seats = ? WHERE show_id = ?`, total, available, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrShowNotFound)
}

// AdjustAvailableSeatsTx moves the availability counter by delta inside
// an existing transaction.  A decrement below zero fails the statement's
// WHERE clause and surfaces as ErrConflict.
func (r *ShowRepo) AdjustAvailableSeatsTx(ctx context.Context, tx *sql.Tx, id uint64, delta int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE shows SET available_seats = available_seats + ?
		 WHERE show_id = ? AND available_seats + ? >= 0`, delta, id, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// CountUpcoming counts active shows scheduled after today.
func (r *ShowRepo) CountUpcoming(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shows WHERE is_active = 1 AND show_date > CURDATE()`).Scan(&n)
	return n, err
}

func (r *ShowRepo) list(ctx context.Context, query string, args ...any) ([]model.Show, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Show
	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *ShowRepo) dates(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanShow(row rowScanner) (*model.Show, error) {
	var s model.Show
	var movieID, eventID sql.NullInt64
	var date, tm sql.NullString
	err := row.Scan(&s.ID, &movieID, &eventID, &s.VenueID, &s.ScreenID, &date, &tm,
		&s.BasePrice, &s.TotalSeats, &s.AvailableSeats, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if movieID.Valid {
		v := uint64(movieID.Int64)
		s.MovieID = &v
	}
	if eventID.Valid {
		v := uint64(eventID.Int64)
		s.EventID = &v
	}
	s.ShowDate = date.String
	s.ShowTime = tm.String
	return &s, nil
}
