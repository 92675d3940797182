package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/config"
	"github.com/omidsh/ticket-booking-platform/internal/payment"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
	"github.com/omidsh/ticket-booking-platform/internal/selection"
	"github.com/omidsh/ticket-booking-platform/internal/service"
)

// PaymentHandler drives the gateway checkout: order creation, signature
// verification and cancellation.
type PaymentHandler struct {
	Cfg      config.Config
	Bookings *service.BookingService
}

func NewPaymentHandler(cfg config.Config, b *service.BookingService) *PaymentHandler {
	return &PaymentHandler{Cfg: cfg, Bookings: b}
}

type verifyReq struct {
	OrderID   string `json:"razorpayOrderId"`
	PaymentID string `json:"razorpayPaymentId"`
	Signature string `json:"razorpaySignature"`
}

// CreateOrder validates the ticket selection, reserves it under a
// PENDING booking and opens a gateway order for the server-computed
// total.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req service.OrderRequest
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	if req.IsOpenEvent {
		if req.OpenShowID == 0 || len(req.ZoneBookings) == 0 {
			return jsonErr(c, http.StatusBadRequest, "openShowId and zoneBookings are required")
		}
	} else {
		if req.ShowID == 0 || len(req.SeatNumbers) == 0 {
			return jsonErr(c, http.StatusBadRequest, "showId and seatNumbers are required")
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	order, err := h.Bookings.CreateOrder(ctx, currentUserID(c), h.Cfg.RazorpayKeyID, req)
	if err != nil {
		return orderError(c, err)
	}
	return jsonOK(c, http.StatusCreated, "order created", order)
}

// Verify confirms a payment from the gateway's order/payment/signature
// triple and returns the confirmed booking.
func (h *PaymentHandler) Verify(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return jsonErr(c, http.StatusBadRequest, "order, payment and signature ids are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	booking, err := h.Bookings.VerifyPayment(ctx, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadSignature):
			return jsonErr(c, http.StatusBadRequest, "payment verification failed")
		case errors.Is(err, service.ErrNotCancelable):
			return jsonErr(c, http.StatusBadRequest, "booking is not awaiting payment")
		case errors.Is(err, repository.ErrBookingNotFound):
			return jsonErr(c, http.StatusNotFound, "booking not found for order")
		}
		return jsonErr(c, http.StatusInternalServerError, "payment verification failed")
	}
	return jsonOK(c, http.StatusOK, "payment verified", booking)
}

// Cancel voids the caller's pending booking and releases its tickets.
func (h *PaymentHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid booking id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	if err := h.Bookings.CancelPayment(ctx, currentUserID(c), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return jsonErr(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, service.ErrNotOwner):
			return jsonErr(c, http.StatusForbidden, "booking belongs to another user")
		case errors.Is(err, service.ErrNotCancelable):
			return jsonErr(c, http.StatusBadRequest, "only pending bookings can be cancelled")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not cancel booking")
	}
	return jsonOK(c, http.StatusOK, "booking cancelled", nil)
}

// orderError maps reservation and order-creation failures onto envelope
// responses. Shared with the direct booking path.
func orderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, selection.ErrSeatUnknown),
		errors.Is(err, selection.ErrZoneUnknown),
		errors.Is(err, selection.ErrZoneCapacity),
		errors.Is(err, selection.ErrLimitExceeded),
		errors.Is(err, service.ErrAmountChanged):
		return jsonErr(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, selection.ErrSeatUnavailable),
		errors.Is(err, repository.ErrSeatUnavailable),
		errors.Is(err, repository.ErrConflict):
		return jsonErr(c, http.StatusBadRequest, "one or more seats are no longer available")
	case errors.Is(err, repository.ErrShowNotFound),
		errors.Is(err, repository.ErrOpenShowNotFound):
		return jsonErr(c, http.StatusNotFound, "show not found")
	case errors.Is(err, payment.ErrOrderCreate):
		return jsonErr(c, http.StatusBadGateway, "payment gateway rejected the order")
	}
	return jsonErr(c, http.StatusInternalServerError, "could not create order")
}
