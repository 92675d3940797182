package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/model"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
	"github.com/omidsh/ticket-booking-platform/internal/service"
)

// BookingHandler serves a user's own bookings plus the direct booking
// path that skips the payment gateway.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Service  *service.BookingService
}

func NewBookingHandler(r *repository.BookingRepo, s *service.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: r, Service: s}
}

// Create books tickets immediately without a gateway order.
func (h *BookingHandler) Create(c echo.Context) error {
	var req service.OrderRequest
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	booking, err := h.Service.CreateDirect(ctx, currentUserID(c), req)
	if err != nil {
		return orderError(c, err)
	}
	return jsonOK(c, http.StatusCreated, "booking created", booking)
}

// MyBookings lists the caller's bookings newest first.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, currentUserID(c))
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load bookings")
	}
	return jsonOK(c, http.StatusOK, "bookings", bookings)
}

// Get returns one booking; users can only see their own, admins any.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid booking id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return jsonErr(c, http.StatusNotFound, "booking not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load booking")
	}
	role, _ := c.Get("role").(string)
	if booking.UserID != currentUserID(c) && role != model.RoleAdmin {
		return jsonErr(c, http.StatusForbidden, "booking belongs to another user")
	}
	return jsonOK(c, http.StatusOK, "booking", booking)
}

// Cancel voids the caller's pending booking, releasing its tickets.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid booking id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	if err := h.Service.CancelPayment(ctx, currentUserID(c), id); err != nil {
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
