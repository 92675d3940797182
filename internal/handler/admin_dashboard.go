package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/model"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// AdminDashboardHandler serves the back-office overview: user and
// booking listings plus the stats widget.
type AdminDashboardHandler struct {
	Users    *repository.UserRepo
	Movies   *repository.MovieRepo
	Events   *repository.EventRepo
	Shows    *repository.ShowRepo
	Bookings *repository.BookingRepo
}

func NewAdminDashboardHandler(u *repository.UserRepo, m *repository.MovieRepo, e *repository.EventRepo, s *repository.ShowRepo, b *repository.BookingRepo) *AdminDashboardHandler {
	return &AdminDashboardHandler{Users: u, Movies: m, Events: e, Shows: s, Bookings: b}
}

// ListUsers returns every registered account.
func (h *AdminDashboardHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load users")
	}
	return jsonOK(c, http.StatusOK, "users", users)
}

// ListBookings returns every booking across all users.
func (h *AdminDashboardHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load bookings")
	}
	return jsonOK(c, http.StatusOK, "bookings", bookings)
}

// Stats aggregates the dashboard counters in one response.
func (h *AdminDashboardHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	totalUsers, err := h.Users.Count(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load stats")
	}
	totalMovies, err := h.Movies.CountActive(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load stats")
	}
	totalEvents, err := h.Events.CountActive(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load stats")
	}
	upcomingShows, err := h.Shows.CountUpcoming(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load stats")
	}
	totalRevenue, err := h.Bookings.TotalRevenue(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load stats")
	}
	todayBookings, err := h.Bookings.CountCreatedSince(ctx, 1)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load stats")
	}
	todayRevenue, err := h.Bookings.RevenueSince(ctx, 1)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load stats")
	}

	byStatus := map[string]int64{}
	var totalBookings int64
	for _, status := range []string{model.BookingPending, model.BookingConfirmed, model.BookingCancelled, model.BookingCompleted} {
		n, err := h.Bookings.CountByStatus(ctx, status)
		if err != nil {
			return jsonErr(c, http.StatusInternalServerError, "could not load stats")
		}
		byStatus[status] = n
		totalBookings += n
	}

	return jsonOK(c, http.StatusOK, "dashboard stats", echo.Map{
		"totalUsers":       totalUsers,
		"totalMovies":      totalMovies,
		"totalEvents":      totalEvents,
		"totalBookings":    totalBookings,
		"todayBookings":    todayBookings,
		"totalRevenue":     totalRevenue,
		"todayRevenue":     todayRevenue,
		"bookingsByStatus": byStatus,
		"upcomingShows":    upcomingShows,
	})
}
