package handler

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// ShowHandler serves showtimes for both seated shows and open-ground
// event shows.
type ShowHandler struct {
	Shows     *repository.ShowRepo
	OpenShows *repository.OpenShowRepo
}

func NewShowHandler(s *repository.ShowRepo, o *repository.OpenShowRepo) *ShowHandler {
	return &ShowHandler{Shows: s, OpenShows: o}
}

// ByMovie returns a movie's active shows on the requested date.
func (h *ShowHandler) ByMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid movie id")
	}
	date := c.QueryParam("date")
	if date == "" {
		return jsonErr(c, http.StatusBadRequest, "date query parameter is required")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shows, err := h.Shows.ListByMovieAndDate(ctx, id, date)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load shows")
	}
	return jsonOK(c, http.StatusOK, "shows", shows)
}

// MovieDates returns the upcoming dates a movie has shows on.
func (h *ShowHandler) MovieDates(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid movie id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dates, err := h.Shows.DatesForMovie(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load dates")
	}
	return jsonOK(c, http.StatusOK, "dates", dates)
}

// ByEvent returns an event's shows on the requested date, both kinds:
// seated shows under regularShows and zone-priced ones under
// openEventShows.
func (h *ShowHandler) ByEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid event id")
	}
	date := c.QueryParam("date")
	if date == "" {
		return jsonErr(c, http.StatusBadRequest, "date query parameter is required")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	regular, err := h.Shows.ListByEventAndDate(ctx, id, date)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load shows")
	}
	open, err := h.OpenShows.ListByEventAndDate(ctx, id, date)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load shows")
	}
	return jsonOK(c, http.StatusOK, "shows", echo.Map{
		"regularShows":   regular,
		"openEventShows": open,
	})
}

// EventDates merges the upcoming dates of an event's seated and open
// shows into one deduplicated sorted list.
func (h *ShowHandler) EventDates(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid event id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	regular, err := h.Shows.DatesForEvent(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load dates")
	}
	open, err := h.OpenShows.DatesForEvent(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load dates")
	}

	seen := make(map[string]bool, len(regular)+len(open))
	merged := make([]string, 0, len(regular)+len(open))
	for _, d := range append(regular, open...) {
		if !seen[d] {
			seen[d] = true
			merged = append(merged, d)
		}
	}
	sort.Strings(merged)
	return jsonOK(c, http.StatusOK, "dates", merged)
}

// Get returns one seated show.
func (h *ShowHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	show, err := h.Shows.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load show")
	}
	return jsonOK(c, http.StatusOK, "show", show)
}

// GetOpen returns one open-ground event show with its pricing zones.
func (h *ShowHandler) GetOpen(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	show, err := h.OpenShows.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrOpenShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load show")
	}
	return jsonOK(c, http.StatusOK, "show", show)
}
