package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// EventHandler serves the public live-event catalog.
type EventHandler struct {
	Events *repository.EventRepo
}

func NewEventHandler(e *repository.EventRepo) *EventHandler { return &EventHandler{Events: e} }

// List returns the active events.
func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListActive(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load events")
	}
	return jsonOK(c, http.StatusOK, "events", events)
}

// Get returns one event by ID.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid event id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return jsonErr(c, http.StatusNotFound, "event not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load event")
	}
	return jsonOK(c, http.StatusOK, "event", event)
}
