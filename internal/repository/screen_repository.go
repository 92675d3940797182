package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// ScreenRepo provides data access to the screens table.  The seat
// layout JSON authored here is what seat generation reads when an admin
// schedules a show on the screen.
type ScreenRepo struct {
	db *sql.DB
}

func NewScreenRepo(db *sql.DB) *ScreenRepo { return &ScreenRepo{db: db} }

const screenCols = `screen_id, venue_id, screen_number, screen_type, sound_system,
	seat_layout, total_seats, is_active, created_at, updated_at`

// ListByVenue returns a venue's screens in screen-number order.
func (r *ScreenRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.Screen, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+screenCols+` FROM screens WHERE venue_id = ? ORDER BY screen_number ASC`, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Screen
	for rows.Next() {
		s, err := scanScreen(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// GetByID loads one screen; ErrScreenNotFound when missing.
func (r *ScreenRepo) GetByID(ctx context.Context, id uint64) (*model.Screen, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+screenCols+` FROM screens WHERE screen_id = ?`, id)
	s, err := scanScreen(row)
	if err == sql.ErrNoRows {
		return nil, ErrScreenNotFound
	}
	return s, err
}

// Create inserts a screen and returns its ID.  TotalSeats is derived
// from the layout when one is provided.
func (r *ScreenRepo) Create(ctx context.Context, s *model.Screen) (uint64, error) {
	if s.SeatLayout != nil {
		s.TotalSeats = s.SeatLayout.TotalSeats()
	}
	layout, err := marshalOrNull(s.SeatLayout)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO screens (venue_id, screen_number, screen_type, sound_system, seat_layout, total_seats, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, 1)`,
		s.VenueID, s.ScreenNumber, s.ScreenType, s.SoundSystem, layout, s.TotalSeats,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites the editable columns of a screen.
func (r *ScreenRepo) Update(ctx context.Context, s *model.Screen) error {
	if s.SeatLayout != nil {
		s.TotalSeats = s.SeatLayout.TotalSeats()
	}
	layout, err := marshalOrNull(s.SeatLayout)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE screens SET screen_number = ?, screen_type = ?, sound_system = ?, seat_layout = ?, total_seats = ?
		 WHERE screen_id = ?`,
		s.ScreenNumber, s.ScreenType, s.SoundSystem, layout, s.TotalSeats, s.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrScreenNotFound)
}

// SetActive flips the soft-delete flag.
func (r *ScreenRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE screens SET is_active = ? WHERE screen_id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrScreenNotFound)
}

func scanScreen(row rowScanner) (*model.Screen, error) {
	var s model.Screen
	var layout sql.NullString
	err := row.Scan(&s.ID, &s.VenueID, &s.ScreenNumber, &s.ScreenType, &s.SoundSystem,
		&layout, &s.TotalSeats, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if layout.Valid && layout.String != "" {
		var sl model.SeatLayout
		if err := json.Unmarshal([]byte(layout.String), &sl); err != nil {
			return nil, err
		}
		s.SeatLayout = &sl
	}
	return &s, nil
}
