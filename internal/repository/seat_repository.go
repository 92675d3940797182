package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// SeatRepo provides data access to the seats table.  Seats are
// generated in bulk per show from the screen layout and are reserved
// under row locks at order creation so two checkouts can never hold the
// same seat.
type SeatRepo struct {
	db *sql.DB
}

func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{db: db} }

const seatCols = `seat_id, show_id, row_label, seat_number, seat_type, price,
	is_available, is_blocked, created_at`

// ListByShow returns every seat of a show in row/number order, the
// shape the seat map renders from.
func (r *SeatRepo) ListByShow(ctx context.Context, showID uint64) ([]model.Seat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+seatCols+` FROM seats WHERE show_id = ?
		 ORDER BY row_label ASC, seat_number ASC`, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Seat
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// LockSeatsTx loads the requested seats FOR UPDATE inside tx.  Missing
// IDs mean the selection references seats that do not belong to the
// show, which surfaces as ErrSeatUnavailable.
func (r *SeatRepo) LockSeatsTx(ctx context.Context, tx *sql.Tx, showID uint64, seatIDs []uint64) ([]model.Seat, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + seatCols + ` FROM seats
		 WHERE show_id = ? AND seat_id IN (` + placeholders(len(seatIDs)) + `) FOR UPDATE`
	args := make([]any, 0, len(seatIDs)+1)
	args = append(args, showID)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Seat
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) != len(seatIDs) {
		return nil, ErrSeatUnavailable
	}
	return out, nil
}

// ReserveTx marks locked seats unavailable.  The WHERE clause re-checks
// availability so a seat already taken between lock and update (or a
// blocked seat slipping through) fails the whole reservation with
// ErrSeatUnavailable.
func (r *SeatRepo) ReserveTx(ctx context.Context, tx *sql.Tx, showID uint64, seatIDs []uint64) error {
	if len(seatIDs) == 0 {
		return nil
	}
	query := `UPDATE seats SET is_available = 0
		 WHERE show_id = ? AND is_available = 1 AND is_blocked = 0
		   AND seat_id IN (` + placeholders(len(seatIDs)) + `)`
	args := make([]any, 0, len(seatIDs)+1)
	args = append(args, showID)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != int64(len(seatIDs)) {
		return ErrSeatUnavailable
	}
	return nil
}

// ReleaseTx returns seats to the pool when a pending payment is
// cancelled or expires.
func (r *SeatRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, showID uint64, seatIDs []uint64) error {
	if len(seatIDs) == 0 {
		return nil
	}
	query := `UPDATE seats SET is_available = 1
		 WHERE show_id = ? AND seat_id IN (` + placeholders(len(seatIDs)) + `)`
	args := make([]any, 0, len(seatIDs)+1)
	args = append(args, showID)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// BulkCreate inserts generated seats for a show in one transaction,
// replacing any previous generation.  Returns the number inserted.
func (r *SeatRepo) BulkCreate(ctx context.Context, showID uint64, seats []model.Seat) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE show_id = ?`, showID); err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO seats (show_id, row_label, seat_number, seat_type, price, is_available, is_blocked)
		 VALUES (?, ?, ?, ?, ?, 1, 0)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for _, s := range seats {
		if _, err := stmt.ExecContext(ctx, showID, s.RowLabel, s.SeatNumber, s.SeatType, s.Price); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(seats), nil
}

// SetBlocked withholds a seat from sale or returns it.
func (r *SeatRepo) SetBlocked(ctx context.Context, seatID uint64, blocked bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE seats SET is_blocked = ? WHERE seat_id = ?`, blocked, seatID)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrSeatUnavailable)
}

// placeholders builds "?, ?, ?" for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func scanSeat(row rowScanner) (*model.Seat, error) {
	var s model.Seat
	err := row.Scan(&s.ID, &s.ShowID, &s.RowLabel, &s.SeatNumber, &s.SeatType,
		&s.Price, &s.IsAvailable, &s.IsBlocked, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
