package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// BookingRepo provides data access to bookings and booking_seats.
// Bookings are written inside the checkout transaction alongside the
// seat reservation or zone decrement, never on their own.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingCols = `booking_id, user_id, show_id, open_show_id, booking_reference,
	total_seats, total_amount, booking_status, payment_status,
	order_id, payment_id, signature, zone_bookings, booking_date, updated_at`

// CreateTx inserts a booking and its seat lines inside tx and fills in
// the generated booking ID.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	zones, err := marshalOrNull(b.ZoneBookings)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (user_id, show_id, open_show_id, booking_reference,
		   total_seats, total_amount, booking_status, payment_status, order_id, zone_bookings)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.UserID, b.ShowID, b.OpenShowID, b.Reference,
		b.TotalSeats, b.TotalAmount, b.BookingStatus, b.PaymentStatus, nullIfEmpty(b.OrderID), zones,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	for i := range b.Seats {
		b.Seats[i].BookingID = b.ID
		sres, err := tx.ExecContext(ctx,
			`INSERT INTO booking_seats (booking_id, seat_id, seat_label, seat_price)
			 VALUES (?, ?, ?, ?)`,
			b.ID, b.Seats[i].SeatID, b.Seats[i].SeatLabel, b.Seats[i].SeatPrice,
		)
		if err != nil {
			return err
		}
		sid, err := sres.LastInsertId()
		if err != nil {
			return err
		}
		b.Seats[i].ID = uint64(sid)
	}
	return nil
}

// GetByID loads a booking with its seat lines; ErrBookingNotFound when
// missing.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingCols+` FROM bookings WHERE booking_id = ?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachSeats(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByOrderID resolves a booking from its gateway order, the lookup
// payment verification uses.
func (r *BookingRepo) GetByOrderID(ctx context.Context, orderID string) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingCols+` FROM bookings WHERE order_id = ?`, orderID)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachSeats(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListByUser returns a user's bookings newest first, seat lines
// included.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingCols+` FROM bookings WHERE user_id = ? ORDER BY booking_date DESC`, userID)
}

// ListAll returns every booking for the admin back office.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingCols+` FROM bookings ORDER BY booking_date DESC`)
}

// UpdatePaymentTx records the verification outcome inside tx.
func (r *BookingRepo) UpdatePaymentTx(ctx context.Context, tx *sql.Tx, id uint64, bookingStatus, paymentStatus, paymentID, signature string) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET booking_status = ?, payment_status = ?, payment_id = ?, signature = ?
		 WHERE booking_id = ?`,
		bookingStatus, paymentStatus, nullIfEmpty(paymentID), nullIfEmpty(signature), id,
	)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrBookingNotFound)
}

// SetOrderID records the gateway order created for a booking.
func (r *BookingRepo) SetOrderID(ctx context.Context, id uint64, orderID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET order_id = ? WHERE booking_id = ?`, orderID, id)
	if err != nil {
		return err
	}
	return affectedOr(res, ErrBookingNotFound)
}

// CancelTx marks a booking cancelled/failed inside tx.  Only pending
// bookings may be cancelled; anything else returns ErrConflict.
func (r *BookingRepo) CancelTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET booking_status = ?, payment_status = ?
		 WHERE booking_id = ? AND booking_status = ?`,
		model.BookingCancelled, model.PaymentFailed, id, model.BookingPending,
	)
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

// ListExpiredPending returns pending bookings older than cutoffMinutes,
// the expiry worker's sweep query.
func (r *BookingRepo) ListExpiredPending(ctx context.Context, cutoffMinutes int) ([]model.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingCols+` FROM bookings
		 WHERE booking_status = ? AND payment_status = ?
		   AND booking_date < DATE_SUB(NOW(), INTERVAL ? MINUTE)`,
		model.BookingPending, model.PaymentPending, cutoffMinutes)
}

// CountByStatus counts bookings in one booking status.
func (r *BookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE booking_status = ?`, status).Scan(&n)
	return n, err
}

// CountCreatedSince counts bookings made on or after t.
func (r *BookingRepo) CountCreatedSince(ctx context.Context, days int) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE booking_date >= DATE_SUB(NOW(), INTERVAL ? DAY)`, days).Scan(&n)
	return n, err
}

// TotalRevenue sums the amounts of paid bookings.
func (r *BookingRepo) TotalRevenue(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(total_amount) FROM bookings WHERE payment_status = ?`, model.PaymentPaid).Scan(&total)
	return total.Int64, err
}

// RevenueSince sums paid booking amounts over the last given days.
func (r *BookingRepo) RevenueSince(ctx context.Context, days int) (int64, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(total_amount) FROM bookings
		 WHERE payment_status = ? AND booking_date >= DATE_SUB(NOW(), INTERVAL ? DAY)`,
		model.PaymentPaid, days).Scan(&total)
	return total.Int64, err
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.attachSeats(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *BookingRepo) attachSeats(ctx context.Context, b *model.Booking) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT booking_seat_id, booking_id, seat_id, seat_label, seat_price
		 FROM booking_seats WHERE booking_id = ? ORDER BY seat_label ASC`, b.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.BookingSeat
		if err := rows.Scan(&s.ID, &s.BookingID, &s.SeatID, &s.SeatLabel, &s.SeatPrice); err != nil {
			return err
		}
		b.Seats = append(b.Seats, s)
	}
	return rows.Err()
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	var showID, openShowID sql.NullInt64
	var orderID, paymentID, signature sql.NullString
	var zones []byte
	err := row.Scan(&b.ID, &b.UserID, &showID, &openShowID, &b.Reference,
		&b.TotalSeats, &b.TotalAmount, &b.BookingStatus, &b.PaymentStatus,
		&orderID, &paymentID, &signature, &zones, &b.BookingDate, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if showID.Valid {
		v := uint64(showID.Int64)
		b.ShowID = &v
	}
	if openShowID.Valid {
		v := uint64(openShowID.Int64)
		b.OpenShowID = &v
	}
	b.OrderID = orderID.String
	b.PaymentID = paymentID.String
	b.Signature = signature.String
	if len(zones) > 0 {
		if err := json.Unmarshal(zones, &b.ZoneBookings); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
