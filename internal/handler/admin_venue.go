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

// AdminVenueHandler manages venues and the screens inside them,
// including seat layout authoring.
type AdminVenueHandler struct {
	Venues  *repository.VenueRepo
	Screens *repository.ScreenRepo
}

func NewAdminVenueHandler(v *repository.VenueRepo, s *repository.ScreenRepo) *AdminVenueHandler {
	return &AdminVenueHandler{Venues: v, Screens: s}
}

// List returns every venue.
func (h *AdminVenueHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load venues")
	}
	return jsonOK(c, http.StatusOK, "venues", venues)
}

// Get returns one venue with its screens.
func (h *AdminVenueHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid venue id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return jsonErr(c, http.StatusNotFound, "venue not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load venue")
	}
	screens, err := h.Screens.ListByVenue(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load screens")
	}
	return jsonOK(c, http.StatusOK, "venue", echo.Map{"venue": venue, "screens": screens})
}

// Create adds a venue.
func (h *AdminVenueHandler) Create(c echo.Context) error {
	var v model.Venue
	if err := c.Bind(&v); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	v.VenueName = strings.TrimSpace(v.VenueName)
	if v.VenueName == "" {
		return jsonErr(c, http.StatusBadRequest, "venue name is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Venues.Create(ctx, &v)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create venue")
	}
	v.ID = id
	v.IsActive = true
	return jsonOK(c, http.StatusCreated, "venue created", v)
}

// Update rewrites a venue's fields.
func (h *AdminVenueHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid venue id")
	}
	var v model.Venue
	if err := c.Bind(&v); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	v.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Venues.Update(ctx, &v); err != nil {
		if err == repository.ErrVenueNotFound {
			return jsonErr(c, http.StatusNotFound, "venue not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update venue")
	}
	return jsonOK(c, http.StatusOK, "venue updated", v)
}

// SoftDelete hides a venue.
func (h *AdminVenueHandler) SoftDelete(c echo.Context) error {
	return h.setActive(c, false, "venue deactivated")
}

// Activate restores a venue.
func (h *AdminVenueHandler) Activate(c echo.Context) error {
	return h.setActive(c, true, "venue activated")
}

func (h *AdminVenueHandler) setActive(c echo.Context, active bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid venue id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Venues.SetActive(ctx, id, active); err != nil {
		if err == repository.ErrVenueNotFound {
			return jsonErr(c, http.StatusNotFound, "venue not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update venue")
	}
	return jsonOK(c, http.StatusOK, message, nil)
}

// CreateScreen adds a screen to a venue. Total seats are derived from
// the submitted seat layout.
func (h *AdminVenueHandler) CreateScreen(c echo.Context) error {
	venueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid venue id")
	}
	var s model.Screen
	if err := c.Bind(&s); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	s.VenueID = venueID

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Venues.GetByID(ctx, venueID); err != nil {
		if err == repository.ErrVenueNotFound {
			return jsonErr(c, http.StatusNotFound, "venue not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load venue")
	}
	id, err := h.Screens.Create(ctx, &s)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create screen")
	}
	s.ID = id
	s.IsActive = true
	return jsonOK(c, http.StatusCreated, "screen created", s)
}

// UpdateScreen rewrites a screen including its seat layout.
func (h *AdminVenueHandler) UpdateScreen(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("screenId"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid screen id")
	}
	var s model.Screen
	if err := c.Bind(&s); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	s.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Screens.Update(ctx, &s); err != nil {
		if err == repository.ErrScreenNotFound {
			return jsonErr(c, http.StatusNotFound, "screen not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update screen")
	}
	return jsonOK(c, http.StatusOK, "screen updated", s)
}

// DeactivateScreen withdraws a screen from scheduling.
func (h *AdminVenueHandler) DeactivateScreen(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("screenId"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid screen id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Screens.SetActive(ctx, id, false); err != nil {
		if err == repository.ErrScreenNotFound {
			return jsonErr(c, http.StatusNotFound, "screen not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update screen")
	}
	return jsonOK(c, http.StatusOK, "screen deactivated", nil)
}
