package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// SeatHandler serves the seat grid for seated shows.
type SeatHandler struct {
	Seats *repository.SeatRepo
	Shows *repository.ShowRepo
}

func NewSeatHandler(s *repository.SeatRepo, sh *repository.ShowRepo) *SeatHandler {
	return &SeatHandler{Seats: s, Shows: sh}
}

// ByShow returns every seat of a show in row order, the payload the seat
// map renders from.
func (h *SeatHandler) ByShow(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid show id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Shows.GetByID(ctx, id); err != nil {
		if err == repository.ErrShowNotFound {
			return jsonErr(c, http.StatusNotFound, "show not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load show")
	}
	seats, err := h.Seats.ListByShow(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load seats")
	}
	return jsonOK(c, http.StatusOK, "seats", seats)
}
