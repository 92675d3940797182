package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/model"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// AdminEventHandler is the live-event back office.
type AdminEventHandler struct {
	Events *repository.EventRepo
}

func NewAdminEventHandler(e *repository.EventRepo) *AdminEventHandler {
	return &AdminEventHandler{Events: e}
}

// List returns every event, inactive ones included.
func (h *AdminEventHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListAll(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load events")
	}
	return jsonOK(c, http.StatusOK, "events", events)
}

// Get returns one event by ID, inactive ones included.
func (h *AdminEventHandler) Get(c echo.Context) error {
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

// Create adds an event to the catalog.
func (h *AdminEventHandler) Create(c echo.Context) error {
	var e model.Event
	if err := c.Bind(&e); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return jsonErr(c, http.StatusBadRequest, "title is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Events.Create(ctx, &e)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create event")
	}
	e.ID = id
	e.IsActive = true
	return jsonOK(c, http.StatusCreated, "event created", e)
}

// Update rewrites an event's catalog fields.
func (h *AdminEventHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid event id")
	}
	var e model.Event
	if err := c.Bind(&e); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	e.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.Update(ctx, &e); err != nil {
		if err == repository.ErrEventNotFound {
			return jsonErr(c, http.StatusNotFound, "event not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update event")
	}
	return jsonOK(c, http.StatusOK, "event updated", e)
}

// SoftDelete hides an event from the public catalog.
func (h *AdminEventHandler) SoftDelete(c echo.Context) error {
	return h.setActive(c, false, "event deactivated")
}

// Activate returns an event to the public catalog.
func (h *AdminEventHandler) Activate(c echo.Context) error {
	return h.setActive(c, true, "event activated")
}

func (h *AdminEventHandler) setActive(c echo.Context, active bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid event id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.SetActive(ctx, id, active); err != nil {
		if err == repository.ErrEventNotFound {
			return jsonErr(c, http.StatusNotFound, "event not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update event")
	}
	return jsonOK(c, http.StatusOK, message, nil)
}
