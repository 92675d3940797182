// Package service holds the booking/checkout flows that span multiple
// repositories inside one database transaction.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/omidsh/ticket-booking-platform/internal/model"
	"github.com/omidsh/ticket-booking-platform/internal/payment"
	"github.com/omidsh/ticket-booking-platform/internal/queue"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
	"github.com/omidsh/ticket-booking-platform/internal/selection"
	"github.com/omidsh/ticket-booking-platform/internal/utils"
)

// Service-level sentinel errors translated by the handlers.
var (
	ErrNotOwner      = errors.New("booking belongs to another user")
	ErrNotCancelable = errors.New("booking is not pending")
	ErrBadSignature  = errors.New("payment signature mismatch")
	ErrAmountChanged = errors.New("submitted total does not match server total")
)

// BookingService owns the checkout lifecycle: order creation with seat
// or zone reservation, payment verification, cancellation and expiry.
type BookingService struct {
	DB        *sql.DB
	Shows     *repository.ShowRepo
	OpenShows *repository.OpenShowRepo
	Seats     *repository.SeatRepo
	Bookings  *repository.BookingRepo
	Users     *repository.UserRepo
	Movies    *repository.MovieRepo
	Events    *repository.EventRepo
	Gateway   *payment.Gateway
}

// OrderRequest is the checkout handoff: seat labels for seated shows or
// a zone breakdown for open events, plus the client-computed total used
// as a consistency check only. The server always recomputes prices.
type OrderRequest struct {
	ShowID       uint64              `json:"showId"`
	OpenShowID   uint64              `json:"openShowId"`
	IsOpenEvent  bool                `json:"isOpenEvent"`
	SeatNumbers  []string            `json:"seatNumbers"`
	ZoneBookings []model.ZoneBooking `json:"zoneBookings"`
	TotalAmount  int64               `json:"totalAmount"`
}

// OrderData is what the checkout page needs to open the hosted gateway
// widget.
type OrderData struct {
	OrderID   string `json:"orderId"`
	BookingID uint64 `json:"bookingId"`
	Reference string `json:"bookingReference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	KeyID     string `json:"keyId"`
}

// CreateOrder validates the selection, reserves the tickets and a
// PENDING booking inside one transaction, then opens a gateway order for
// the server-computed total. Seat and capacity counters move here, at
// reservation time, so a second checkout racing for the same seats fails
// with ErrSeatUnavailable while the first holds them. If the gateway
// rejects the order the reservation is rolled back.
func (s *BookingService) CreateOrder(ctx context.Context, userID uint64, keyID string, req OrderRequest) (*OrderData, error) {
	var booking *model.Booking
	var err error
	if req.IsOpenEvent {
		booking, err = s.reserveZones(ctx, userID, req)
	} else {
		booking, err = s.reserveSeats(ctx, userID, req)
	}
	if err != nil {
		return nil, err
	}

	order, err := s.Gateway.CreateOrder(booking.TotalAmount, booking.Reference)
	if err != nil {
		// Give the tickets back; the booking never reached the gateway.
		if cerr := s.cancelPending(ctx, booking.ID); cerr != nil {
			log.Printf("booking-service: rollback after gateway failure for booking %d: %v", booking.ID, cerr)
		}
		return nil, err
	}

	if err := s.Bookings.SetOrderID(ctx, booking.ID, order.ID); err != nil {
		return nil, err
	}
	return &OrderData{
		OrderID:   order.ID,
		BookingID: booking.ID,
		Reference: booking.Reference,
		Amount:    order.Amount,
		Currency:  order.Currency,
		KeyID:     keyID,
	}, nil
}

func (s *BookingService) reserveSeats(ctx context.Context, userID uint64, req OrderRequest) (*model.Booking, error) {
	show, err := s.Shows.GetByID(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	all, err := s.Seats.ListByShow(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}
	resolved, err := selection.ResolveSeats(all, req.SeatNumbers)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, len(resolved))
	for i, seat := range resolved {
		ids[i] = seat.ID
	}
	locked, err := s.Seats.LockSeatsTx(ctx, tx, req.ShowID, ids)
	if err != nil {
		return nil, err
	}
	for _, seat := range locked {
		if !seat.IsAvailable || seat.IsBlocked {
			return nil, repository.ErrSeatUnavailable
		}
	}
	if err := s.Seats.ReserveTx(ctx, tx, req.ShowID, ids); err != nil {
		return nil, err
	}
	if err := s.Shows.AdjustAvailableSeatsTx(ctx, tx, req.ShowID, -len(ids)); err != nil {
		return nil, err
	}

	total := selection.SeatTotal(resolved)
	if req.TotalAmount != 0 && req.TotalAmount != total {
		return nil, ErrAmountChanged
	}

	showID := show.ID
	booking := &model.Booking{
		UserID:        userID,
		ShowID:        &showID,
		Reference:     utils.NewBookingReference(),
		TotalSeats:    len(resolved),
		TotalAmount:   total,
		BookingStatus: model.BookingPending,
		PaymentStatus: model.PaymentPending,
	}
	for _, seat := range resolved {
		booking.Seats = append(booking.Seats, model.BookingSeat{
			SeatID:    seat.ID,
			SeatLabel: seat.Label(),
			SeatPrice: seat.Price,
		})
	}
	if err := s.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) reserveZones(ctx context.Context, userID uint64, req OrderRequest) (*model.Booking, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	show, err := s.OpenShows.GetForUpdateTx(ctx, tx, req.OpenShowID)
	if err != nil {
		return nil, err
	}
	lines, err := selection.ResolveZones(show.PricingZones, req.ZoneBookings)
	if err != nil {
		return nil, err
	}
	if err := s.OpenShows.ApplyZoneBookingsTx(ctx, tx, show, lines); err != nil {
		return nil, err
	}

	total := selection.ZoneTotal(lines)
	if req.TotalAmount != 0 && req.TotalAmount != total {
		return nil, ErrAmountChanged
	}
	tickets := 0
	for _, l := range lines {
		tickets += l.Quantity
	}

	openShowID := show.ID
	booking := &model.Booking{
		UserID:        userID,
		OpenShowID:    &openShowID,
		Reference:     utils.NewBookingReference(),
		TotalSeats:    tickets,
		TotalAmount:   total,
		BookingStatus: model.BookingPending,
		PaymentStatus: model.PaymentPending,
		ZoneBookings:  lines,
	}
	if err := s.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return booking, nil
}

// VerifyPayment checks the gateway signature for an order and confirms
// its booking. Tickets were already reserved at order creation, so
// confirmation only moves statuses and announces the booking.
func (s *BookingService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*model.Booking, error) {
	if !s.Gateway.VerifySignature(orderID, paymentID, signature) {
		return nil, ErrBadSignature
	}

	booking, err := s.Bookings.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if booking.BookingStatus != model.BookingPending {
		return nil, ErrNotCancelable
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := s.Bookings.UpdatePaymentTx(ctx, tx, booking.ID, model.BookingConfirmed, model.PaymentPaid, paymentID, signature); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	booking.BookingStatus = model.BookingConfirmed
	booking.PaymentStatus = model.PaymentPaid
	booking.PaymentID = paymentID
	booking.Signature = signature

	s.publishConfirmed(ctx, booking)
	return booking, nil
}

// publishConfirmed announces a confirmed booking to the broker. Failures
// are logged only; the payment is already confirmed and must not fail on
// messaging.
func (s *BookingService) publishConfirmed(ctx context.Context, b *model.Booking) {
	ev := queue.BookingConfirmedEvent{
		BookingID:        b.ID,
		BookingReference: b.Reference,
		UserID:           b.UserID,
		TotalTickets:     b.TotalSeats,
		TotalAmount:      b.TotalAmount,
		ConfirmedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if u, err := s.Users.GetByID(ctx, b.UserID); err == nil {
		ev.UserEmail = u.Email
	}
	for _, seat := range b.Seats {
		ev.SeatLabels = append(ev.SeatLabels, seat.SeatLabel)
	}
	if len(b.ZoneBookings) > 0 {
		summary := ""
		for i, z := range b.ZoneBookings {
			if i > 0 {
				summary += ","
			}
			summary += fmt.Sprintf("%s x%d", z.ZoneName, z.Quantity)
		}
		ev.ZoneSummary = summary
	}
	if b.ShowID != nil {
		ev.ShowID = *b.ShowID
		if show, err := s.Shows.GetByID(ctx, *b.ShowID); err == nil {
			ev.ShowDate = show.ShowDate
			ev.ShowTime = show.ShowTime
			if show.MovieID != nil {
				if m, err := s.Movies.GetByID(ctx, *show.MovieID); err == nil {
					ev.ItemTitle = m.Title
				}
			} else if show.EventID != nil {
				if e, err := s.Events.GetByID(ctx, *show.EventID); err == nil {
					ev.ItemTitle = e.Title
				}
			}
		}
	} else if b.OpenShowID != nil {
		ev.OpenShowID = *b.OpenShowID
		if show, err := s.OpenShows.GetByID(ctx, *b.OpenShowID); err == nil {
			ev.ShowDate = show.ShowDate
			ev.ShowTime = show.ShowTime
			if e, err := s.Events.GetByID(ctx, show.EventID); err == nil {
				ev.ItemTitle = e.Title
			}
		}
	}
	if err := queue.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("booking-service: publish confirmed booking %s: %v", b.Reference, err)
	}
}

// CancelPayment voids a user's own pending booking and releases its
// tickets. Anything past PENDING cannot be cancelled through this path.
func (s *BookingService) CancelPayment(ctx context.Context, userID, bookingID uint64) error {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return ErrNotOwner
	}
	if booking.BookingStatus != model.BookingPending || booking.PaymentStatus != model.PaymentPending {
		return ErrNotCancelable
	}
	return s.cancelPending(ctx, bookingID)
}

// cancelPending cancels a pending booking and returns its tickets to the
// pool in one transaction. Shared by user cancellation and the expiry
// worker.
func (s *BookingService) cancelPending(ctx context.Context, bookingID uint64) error {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.Bookings.CancelTx(ctx, tx, bookingID); err != nil {
		return err
	}
	switch {
	case booking.ShowID != nil:
		ids := make([]uint64, len(booking.Seats))
		for i, seat := range booking.Seats {
			ids[i] = seat.SeatID
		}
		if err := s.Seats.ReleaseTx(ctx, tx, *booking.ShowID, ids); err != nil {
			return err
		}
		if err := s.Shows.AdjustAvailableSeatsTx(ctx, tx, *booking.ShowID, len(ids)); err != nil {
			return err
		}
	case booking.OpenShowID != nil:
		show, err := s.OpenShows.GetForUpdateTx(ctx, tx, *booking.OpenShowID)
		if err != nil {
			return err
		}
		if err := s.OpenShows.ReleaseZoneBookingsTx(ctx, tx, show, booking.ZoneBookings); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ExpirePending sweeps pending bookings older than ttl and cancels each
// one, releasing its tickets. Returns how many were expired.
func (s *BookingService) ExpirePending(ctx context.Context, ttl time.Duration) (int, error) {
	minutes := int(ttl / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	stale, err := s.Bookings.ListExpiredPending(ctx, minutes)
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, b := range stale {
		if err := s.cancelPending(ctx, b.ID); err != nil {
			log.Printf("booking-service: expire booking %s: %v", b.Reference, err)
			continue
		}
		expired++
	}
	return expired, nil
}

// CreateDirect books seats immediately without the payment gateway, the
// path used for complimentary or offline-paid bookings. The booking is
// confirmed at once with payment still pending.
func (s *BookingService) CreateDirect(ctx context.Context, userID uint64, req OrderRequest) (*model.Booking, error) {
	var booking *model.Booking
	var err error
	if req.IsOpenEvent {
		booking, err = s.reserveZones(ctx, userID, req)
	} else {
		booking, err = s.reserveSeats(ctx, userID, req)
	}
	if err != nil {
		return nil, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := s.Bookings.UpdatePaymentTx(ctx, tx, booking.ID, model.BookingConfirmed, model.PaymentPending, "", ""); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	booking.BookingStatus = model.BookingConfirmed
	return booking, nil
}
