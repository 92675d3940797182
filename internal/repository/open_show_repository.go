package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// OpenShowRepo provides data access to open_event_shows, the seatless
// show variant sold through JSON-encoded pricing zones.
type OpenShowRepo struct {
	db *sql.DB
}

func NewOpenShowRepo(db *sql.DB) *OpenShowRepo { return &OpenShowRepo{db: db} }

const openShowCols = `open_show_id, event_id,
	DATE_FORMAT(show_date, '%Y-%m-%d'), TIME_FORMAT(show_time, '%H:%i:%s'),
	pricing_zones, total_capacity, available_capacity, is_active, created_at, updated_at`

// GetByID loads one open show; ErrOpenShowNotFound when missing.
func (r *OpenShowRepo) GetByID(ctx context.Context, id uint64) (*model.OpenEventShow, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+openShowCols+` FROM open_event_shows WHERE open_show_id = ?`, id)
	s, err := scanOpenShow(row)
	if err == sql.ErrNoRows {
		return nil, ErrOpenShowNotFound
	}
	return s, err
}

// ListByEventAndDate returns an event's active open shows on one date.
func (r *OpenShowRepo) ListByEventAndDate(ctx context.Context, eventID uint64, date string) ([]model.OpenEventShow, error) {
	return r.list(ctx,
		`SELECT `+openShowCols+` FROM open_event_shows
		 WHERE event_id = ? AND show_date = ? AND is_active = 1
		 ORDER BY show_time ASC`, eventID, date)
}

// DatesForEvent returns the distinct upcoming dates of an event's open
// shows.
func (r *OpenShowRepo) DatesForEvent(ctx context.Context, eventID uint64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT DATE_FORMAT(show_date, '%Y-%m-%d') FROM open_event_shows
		 WHERE event_id = ? AND is_active = 1 AND show_date >= CURDATE()
		 ORDER BY 1 ASC`, eventID)
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

// ListAll returns every open show for the admin back office.
func (r *OpenShowRepo) ListAll(ctx context.Context) ([]model.OpenEventShow, error) {
	return r.list(ctx, `SELECT `+openShowCols+` FROM open_event_shows ORDER BY show_date DESC, show_time DESC`)
}

// Create inserts an open show.  Capacity totals are derived from the
// zones so the stored counters never disagree with the zone list.
func (r *OpenShowRepo) Create(ctx context.Context, s *model.OpenEventShow) (uint64, error) {
	total := 0
	for i := range s.PricingZones {
		if s.PricingZones[i].AvailableCapacity == 0 && s.PricingZones[i].Capacity > 0 {
			s.PricingZones[i].AvailableCapacity = s.PricingZones[i].Capacity
		}
		total += s.PricingZones[i].Capacity
	}
	s.TotalCapacity = total
	s.AvailableCapacity = total

	zones, err := marshalOrNull(s.PricingZones)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO open_event_shows (event_id, show_date, show_time, pricing_zones,
		   total_capacity, available_capacity, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, 1)`,
		s.EventID, s.ShowDate, s.ShowTime, zones, s.TotalCapacity, s.AvailableCapacity,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites the schedule and zone columns of an open show.
func (r *OpenShowRepo) Update(ctx context.Context, s *model.OpenEventShow) error {
	zones, err := marshalOrNull(s.PricingZones)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE open_event_shows SET event_id = ?, show_date = ?, show_time = ?,
		   pricing_zones = ?, total_capacity = ?, available_capacity = ?
		 WHERE open_show_id = ?`,
		s.EventID, s.ShowDate, s.ShowTime, zones, s.TotalCapacity, s.AvailableCapacity, s.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrOpenShowNotFound)
}

// SetActive flips the soft-delete flag.
func (r *OpenShowRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE open_event_shows SET is_active = ? WHERE open_show_id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrOpenShowNotFound)
}

// GetForUpdateTx locks an open show row inside tx so zone capacity can
// be checked and decremented without racing a concurrent checkout.
func (r *OpenShowRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.OpenEventShow, error) {
	row := tx.QueryRowContext(ctx, `SELECT `+openShowCols+` FROM open_event_shows WHERE open_show_id = ? FOR UPDATE`, id)
	s, err := scanOpenShow(row)
	if err == sql.ErrNoRows {
		return nil, ErrOpenShowNotFound
	}
	return s, err
}

// ApplyZoneBookingsTx subtracts confirmed zone quantities from a locked
// open show and persists the updated zone list and counters.  Callers
// must have loaded the show via GetForUpdateTx in the same transaction.
// A quantity exceeding a zone's remaining capacity returns ErrConflict.
func (r *OpenShowRepo) ApplyZoneBookingsTx(ctx context.Context, tx *sql.Tx, s *model.OpenEventShow, bookings []model.ZoneBooking) error {
	taken := 0
	for _, zb := range bookings {
		found := false
		for i := range s.PricingZones {
			if s.PricingZones[i].Name != zb.ZoneName {
				continue
			}
			found = true
			if s.PricingZones[i].AvailableCapacity < zb.Quantity {
				return ErrConflict
			}
			s.PricingZones[i].AvailableCapacity -= zb.Quantity
			break
		}
		if !found {
			return ErrConflict
		}
		taken += zb.Quantity
	}
	if s.AvailableCapacity < taken {
		return ErrConflict
	}
	s.AvailableCapacity -= taken

	zones, err := marshalOrNull(s.PricingZones)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE open_event_shows SET pricing_zones = ?, available_capacity = ? WHERE open_show_id = ?`,
		zones, s.AvailableCapacity, s.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrOpenShowNotFound)
}

// ReleaseZoneBookingsTx returns zone quantities to a locked open show
// when a pending payment is cancelled or expires.  Restored capacity is
// clamped to each zone's configured maximum.
func (r *OpenShowRepo) ReleaseZoneBookingsTx(ctx context.Context, tx *sql.Tx, s *model.OpenEventShow, bookings []model.ZoneBooking) error {
	released := 0
	for _, zb := range bookings {
		for i := range s.PricingZones {
			if s.PricingZones[i].Name != zb.ZoneName {
				continue
			}
			s.PricingZones[i].AvailableCapacity += zb.Quantity
			if s.PricingZones[i].AvailableCapacity > s.PricingZones[i].Capacity {
				s.PricingZones[i].AvailableCapacity = s.PricingZones[i].Capacity
			}
			break
		}
		released += zb.Quantity
	}
	s.AvailableCapacity += released
	if s.AvailableCapacity > s.TotalCapacity {
		s.AvailableCapacity = s.TotalCapacity
	}

	zones, err := marshalOrNull(s.PricingZones)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE open_event_shows SET pricing_zones = ?, available_capacity = ? WHERE open_show_id = ?`,
		zones, s.AvailableCapacity, s.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrOpenShowNotFound)
}

func (r *OpenShowRepo) list(ctx context.Context, query string, args ...any) ([]model.OpenEventShow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.OpenEventShow
	for rows.Next() {
		s, err := scanOpenShow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func scanOpenShow(row rowScanner) (*model.OpenEventShow, error) {
	var s model.OpenEventShow
	var date, tm sql.NullString
	var zones []byte
	err := row.Scan(&s.ID, &s.EventID, &date, &tm, &zones,
		&s.TotalCapacity, &s.AvailableCapacity, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.ShowDate = date.String
	s.ShowTime = tm.String
	if len(zones) > 0 {
		if err := json.Unmarshal(zones, &s.PricingZones); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
