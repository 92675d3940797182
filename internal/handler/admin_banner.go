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

// AdminBannerHandler manages the homepage carousel from the back
// office: CRUD over banners with the usual soft-delete/activate pair.
type AdminBannerHandler struct {
	Banners *repository.BannerRepo
}

func NewAdminBannerHandler(b *repository.BannerRepo) *AdminBannerHandler {
	return &AdminBannerHandler{Banners: b}
}

// List returns every banner, inactive ones included.
func (h *AdminBannerHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	banners, err := h.Banners.ListAll(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load banners")
	}
	return jsonOK(c, http.StatusOK, "banners", banners)
}

// Create adds a banner to the carousel.
func (h *AdminBannerHandler) Create(c echo.Context) error {
	var b model.Banner
	if err := c.Bind(&b); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" || b.BannerImageURL == "" {
		return jsonErr(c, http.StatusBadRequest, "title and bannerImageUrl are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Banners.Create(ctx, &b)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create banner")
	}
	b.ID = id
	b.IsActive = true
	return jsonOK(c, http.StatusCreated, "banner created", b)
}

// Update rewrites a banner's fields.
func (h *AdminBannerHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid banner id")
	}
	var b model.Banner
	if err := c.Bind(&b); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	b.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Banners.Update(ctx, &b); err != nil {
		if err == repository.ErrBannerNotFound {
			return jsonErr(c, http.StatusNotFound, "banner not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update banner")
	}
	return jsonOK(c, http.StatusOK, "banner updated", b)
}

// SoftDelete pulls a banner out of the carousel.
func (h *AdminBannerHandler) SoftDelete(c echo.Context) error {
	return h.setActive(c, false, "banner deactivated")
}

// Activate puts a banner back into the carousel.
func (h *AdminBannerHandler) Activate(c echo.Context) error {
	return h.setActive(c, true, "banner activated")
}

func (h *AdminBannerHandler) setActive(c echo.Context, active bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid banner id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Banners.SetActive(ctx, id, active); err != nil {
		if err == repository.ErrBannerNotFound {
			return jsonErr(c, http.StatusNotFound, "banner not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update banner")
	}
	return jsonOK(c, http.StatusOK, message, nil)
}
