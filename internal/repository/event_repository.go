package repository

import (
	"context"
	"database/sql"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// EventRepo provides data access to the events table.  Events follow
// the same active/inactive catalog split as movies.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

const eventCols = `event_id, title, description, category,
	DATE_FORMAT(event_date, '%Y-%m-%d'), TIME_FORMAT(event_time, '%H:%i:%s'),
	duration_minutes, artist_or_team, language, age_restriction,
	trailer_url, display_image_url, banner_image_url, is_active, created_at, updated_at`

// ListActive returns upcoming public events, soonest first.
func (r *EventRepo) ListActive(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, `SELECT `+eventCols+` FROM events WHERE is_active = 1 ORDER BY event_date ASC`)
}

// ListAll returns every event for the admin back office.
func (r *EventRepo) ListAll(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, `SELECT `+eventCols+` FROM events ORDER BY created_at DESC`)
}

// GetByID loads a single event; ErrEventNotFound when missing.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventCols+` FROM events WHERE event_id = ?`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	return e, err
}

// Create inserts an event and returns its ID.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (title, description, category, event_date, event_time, duration_minutes,
		   artist_or_team, language, age_restriction, trailer_url, display_image_url, banner_image_url, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		e.Title, e.Description, e.Category, e.EventDate, e.EventTime, e.DurationMinutes,
		e.ArtistOrTeam, e.Language, e.AgeRestriction, e.TrailerURL, e.DisplayImageURL, e.BannerImageURL,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites every editable column of an event.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET title = ?, description = ?, category = ?, event_date = ?, event_time = ?,
		   duration_minutes = ?, artist_or_team = ?, language = ?, age_restriction = ?,
		   trailer_url = ?, display_image_url = ?, banner_image_url = ?
		 WHERE event_id = ?`,
		e.Title, e.Description, e.Category, e.EventDate, e.EventTime, e.DurationMinutes,
		e.ArtistOrTeam, e.Language, e.AgeRestriction, e.TrailerURL, e.DisplayImageURL, e.BannerImageURL, e.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrEventNotFound)
}

// SetActive flips the soft-delete flag.
func (r *EventRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE events SET is_active = ? WHERE event_id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrEventNotFound)
}

// CountActive counts active events for the dashboard.
func (r *EventRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE is_active = 1`).Scan(&n)
	return n, err
}

func (r *EventRepo) list(ctx context.Context, query string) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var e model.Event
	var date, tm sql.NullString
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &date, &tm,
		&e.DurationMinutes, &e.ArtistOrTeam, &e.Language, &e.AgeRestriction,
		&e.TrailerURL, &e.DisplayImageURL, &e.BannerImageURL, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.EventDate = date.String
	e.EventTime = tm.String
	return &e, nil
}
