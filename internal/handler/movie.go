package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// MovieHandler serves the public movie catalog.
type MovieHandler struct {
	Movies *repository.MovieRepo
}

func NewMovieHandler(m *repository.MovieRepo) *MovieHandler { return &MovieHandler{Movies: m} }

// List returns the active movies for the browse grid.
func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.ListActive(ctx)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load movies")
	}
	return jsonOK(c, http.StatusOK, "movies", movies)
}

// Get returns one movie by ID.
func (h *MovieHandler) Get(c echo.Context) error {
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
