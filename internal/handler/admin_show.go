package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/model"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// AdminShowHandler schedules shows and open-event shows, and generates
// seat grids from screen layouts.
type AdminShowHandler struct {
	Shows     *repository.ShowRepo
	OpenShows *repository.OpenShowRepo
	Screens   *repository.ScreenRepo
	Seats     *repository.SeatRepo
}

func NewAdminShowHandler(s *repository.ShowRepo, o *repository.OpenShowRepo, sc *repository.ScreenRepo, se *repository.SeatRepo) *AdminShowHandler {
	return &AdminShowHandler{Shows: s, OpenShows: o, Screens: sc, Seats: se}
}

// List returns every show.
func (h *AdminShowHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load shows")
	}
	return jsonOK(c, http.StatusOK, "shows", shows)
}

// Create schedules a show. Exactly one of movieId and eventId must be
// set; seats are generated separately.
func (h *AdminShowHandler) Create(c echo.Context) error {
	var s model.Show
	if err := c.Bind(&s); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	if (s.MovieID == nil) == (s.EventID == nil) {
		return jsonErr(c, http.StatusBadRequest, "exactly one of movieId and eventId is required")
	}
	if s.ShowDate == "" || s.ShowTime == "" {
		return jsonErr(c, http.StatusBadRequest, "showDate and showTime are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Shows.Create(ctx, &s)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create show")
	}
	s.ID = id
	s.IsActive = true
	return jsonOK(c, http.StatusCreated, "show created", s)
}

// Update rewrites a show's schedule and pricing.
func (h *AdminShowHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	var s model.Show
	if err := c.Bind(&s); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	s.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Shows.Update(ctx, &s); err != nil {
		if err == repository.ErrShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update show")
	}
	return jsonOK(c, http.StatusOK, "show updated", s)
}

// SoftDelete withdraws a show from sale.
func (h *AdminShowHandler) SoftDelete(c echo.Context) error {
	return h.setActive(c, false, "show deactivated")
}

// Activate returns a show to sale.
func (h *AdminShowHandler) Activate(c echo.Context) error {
	return h.setActive(c, true, "show activated")
}

func (h *AdminShowHandler) setActive(c echo.Context, active bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Shows.SetActive(ctx, id, active); err != nil {
		if err == repository.ErrShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update show")
	}
	return jsonOK(c, http.StatusOK, message, nil)
}

// GenerateSeats builds the seat grid for a show from its screen's
// layout, pricing every seat at the show's base price. Falls back to a
// 10×26 grid when the screen has no layout. Regenerating replaces any
// previous grid.
func (h *AdminShowHandler) GenerateSeats(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	show, err := h.Shows.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load show")
	}
	screen, err := h.Screens.GetByID(ctx, show.ScreenID)
	if err != nil {
		if err == repository.ErrScreenNotFound {
			return jsonErr(c, http.StatusNotFound, "screen not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load screen")
	}

	seats := buildSeatGrid(show.ID, screen.SeatLayout, show.BasePrice)
	n, err := h.Seats.BulkCreate(ctx, show.ID, seats)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not generate seats")
	}
	if err := h.Shows.SetSeatCounts(ctx, show.ID, n, n); err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not update seat counts")
	}
	return jsonOK(c, http.StatusOK, "seats generated", echo.Map{"showId": show.ID, "totalSeats": n})
}

// buildSeatGrid expands a layout into concrete seats. With no layout a
// default ten-row, 26-seats-per-row grid is produced.
func buildSeatGrid(showID uint64, layout *model.SeatLayout, price int64) []model.Seat {
	rows := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	perRow := map[string]int{}
	if layout != nil && len(layout.Rows) > 0 {
		rows = layout.Rows
		perRow = layout.SeatsPerRow
	}
	var seats []model.Seat
	for _, row := range rows {
		count := perRow[row]
		if count <= 0 {
			count = 26
		}
		for n := 1; n <= count; n++ {
			seats = append(seats, model.Seat{
				ShowID:      showID,
				RowLabel:    row,
				SeatNumber:  n,
				SeatType:    model.SeatTypeRegular,
				Price:       price,
				IsAvailable: true,
			})
		}
	}
	return seats
}

// ListOpen returns every open-event show.
func (h *AdminShowHandler) ListOpen(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shows, err := h.OpenShows.ListAll(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load shows")
	}
	return jsonOK(c, http.StatusOK, "shows", shows)
}

// CreateOpen schedules an open-event show with its pricing zones.
func (h *AdminShowHandler) CreateOpen(c echo.Context) error {
	var s model.OpenEventShow
	if err := c.Bind(&s); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	if s.EventID == 0 || s.ShowDate == "" || s.ShowTime == "" {
		return jsonErr(c, http.StatusBadRequest, "eventId, showDate and showTime are required")
	}
	if len(s.PricingZones) == 0 {
		return jsonErr(c, http.StatusBadRequest, "at least one pricing zone is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.OpenShows.Create(ctx, &s)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create show")
	}
	s.ID = id
	s.IsActive = true
	return jsonOK(c, http.StatusCreated, "show created", s)
}

// UpdateOpen rewrites an open show's schedule and zones.
func (h *AdminShowHandler) UpdateOpen(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	var s model.OpenEventShow
	if err := c.Bind(&s); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	s.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.OpenShows.Update(ctx, &s); err != nil {
		if err == repository.ErrOpenShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update show")
	}
	return jsonOK(c, http.StatusOK, "show updated", s)
}

// SoftDeleteOpen withdraws an open show from sale.
func (h *AdminShowHandler) SoftDeleteOpen(c echo.Context) error {
	return h.setOpenActive(c, false, "show deactivated")
}

// ActivateOpen returns an open show to sale.
func (h *AdminShowHandler) ActivateOpen(c echo.Context) error {
	return h.setOpenActive(c, true, "show activated")
}

func (h *AdminShowHandler) setOpenActive(c echo.Context, active bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.OpenShows.SetActive(ctx, id, active); err != nil {
		if err == repository.ErrOpenShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update show")
	}
	return jsonOK(c, http.StatusOK, message, nil)
}
