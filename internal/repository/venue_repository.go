package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// VenueRepo provides data access to the venues table.  Facilities is a
// free-form JSON document stored as TEXT and round-tripped through
// encoding/json.
type VenueRepo struct {
	db *sql.DB
}

func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

const venueCols = `venue_id, venue_name, address, city, state, pincode,
	total_screens, facilities, is_active, created_at, updated_at`

// ListAll returns every venue for the admin back office.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+venueCols+` FROM venues ORDER BY venue_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// GetByID loads a single venue; ErrVenueNotFound when missing.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+venueCols+` FROM venues WHERE venue_id = ?`, id)
	v, err := scanVenue(row)
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	return v, err
}

// Create inserts a venue and returns its ID.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) (uint64, error) {
	fac, err := marshalOrNull(v.Facilities)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO venues (venue_name, address, city, state, pincode, total_screens, facilities, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		v.VenueName, v.Address, v.City, v.State, v.Pincode, v.TotalScreens, fac,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites the editable columns of a venue.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	fac, err := marshalOrNull(v.Facilities)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE venues SET venue_name = ?, address = ?, city = ?, state = ?, pincode = ?,
		   total_screens = ?, facilities = ?
		 WHERE venue_id = ?`,
		v.VenueName, v.Address, v.City, v.State, v.Pincode, v.TotalScreens, fac, v.ID,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrVenueNotFound)
}

// SetActive flips the soft-delete flag.
func (r *VenueRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE venues SET is_active = ? WHERE venue_id = ?`, active, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrVenueNotFound)
}

func scanVenue(row rowScanner) (*model.Venue, error) {
	var v model.Venue
	var fac sql.NullString
	err := row.Scan(&v.ID, &v.VenueName, &v.Address, &v.City, &v.State, &v.Pincode,
		&v.TotalScreens, &fac, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if fac.Valid && fac.String != "" {
		if err := json.Unmarshal([]byte(fac.String), &v.Facilities); err != nil {
			return nil, err
		}
	}
	return &v, nil
}

// marshalOrNull serializes a JSON column value, mapping empty to NULL.
func marshalOrNull(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
