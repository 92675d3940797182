package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// BannerHandler serves the public homepage carousel.
type BannerHandler struct {
	Banners *repository.BannerRepo
}

func NewBannerHandler(b *repository.BannerRepo) *BannerHandler { return &BannerHandler{Banners: b} }

// List returns the active banners in display order.
func (h *BannerHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	banners, err := h.Banners.ListActive(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load banners")
	}
	return jsonOK(c, http.StatusOK, "banners", banners)
}

// Get returns one banner by ID.
func (h *BannerHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid banner id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	banner, err := h.Banners.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBannerNotFound {
			return jsonErr(c, http.StatusNotFound, "banner not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load banner")
	}
	return jsonOK(c, http.StatusOK, "banner", banner)
}
