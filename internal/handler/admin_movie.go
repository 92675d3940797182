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

// AdminMovieHandler is the movie back office: full CRUD including
// inactive entries, with soft-delete and activate as distinct endpoints.
type AdminMovieHandler struct {
	Movies *repository.MovieRepo
}

func NewAdminMovieHandler(m *repository.MovieRepo) *AdminMovieHandler {
	return &AdminMovieHandler{Movies: m}
}

// List returns every movie, inactive ones included.
func (h *AdminMovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load movies")
	}
	return jsonOK(c, http.StatusOK, "movies", movies)
}

// Get returns one movie by ID, inactive ones included.
func (h *AdminMovieHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid movie id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movie, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return jsonErr(c, http.StatusNotFound, "movie not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not load movie")
	}
	return jsonOK(c, http.StatusOK, "movie", movie)
}

// Create adds a movie to the catalog.
func (h *AdminMovieHandler) Create(c echo.Context) error {
	var m model.Movie
	if err := c.Bind(&m); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return jsonErr(c, http.StatusBadRequest, "title is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Movies.Create(ctx, &m)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create movie")
	}
	m.ID = id
	m.IsActive = true
	return jsonOK(c, http.StatusCreated, "movie created", m)
}

// Update rewrites a movie's catalog fields.
func (h *AdminMovieHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid movie id")
	}
	var m model.Movie
	if err := c.Bind(&m); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	m.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.Update(ctx, &m); err != nil {
		if err == repository.ErrMovieNotFound {
			return jsonErr(c, http.StatusNotFound, "movie not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update movie")
	}
	return jsonOK(c, http.StatusOK, "movie updated", m)
}

// SoftDelete hides a movie from the public catalog.
func (h *AdminMovieHandler) SoftDelete(c echo.Context) error {
	return h.setActive(c, false, "movie deactivated")
}

// Activate returns a movie to the public catalog.
func (h *AdminMovieHandler) Activate(c echo.Context) error {
	return h.setActive(c, true, "movie activated")
}

func (h *AdminMovieHandler) setActive(c echo.Context, active bool, message string) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid movie id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.SetActive(ctx, id, active); err != nil {
		if err == repository.ErrMovieNotFound {
			return jsonErr(c, http.StatusNotFound, "movie not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "could not update movie")
	}
	return jsonOK(c, http.StatusOK, message, nil)
}
