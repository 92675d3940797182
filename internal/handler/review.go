package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/model"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
)

// ReviewHandler serves movie and event reviews: public per-item lists
// and average ratings, plus authenticated create/update/delete.  Only
// the review's author (or an admin) may change or remove it.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
	Users   *repository.UserRepo
	Movies  *repository.MovieRepo
	Events  *repository.EventRepo
}

func NewReviewHandler(r *repository.ReviewRepo, u *repository.UserRepo, m *repository.MovieRepo, e *repository.EventRepo) *ReviewHandler {
	return &ReviewHandler{Reviews: r, Users: u, Movies: m, Events: e}
}

type reviewReq struct {
	MovieID *uint64 `json:"movieId"`
	EventID *uint64 `json:"eventId"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// ByMovie returns a movie's reviews newest first.
func (h *ReviewHandler) ByMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid movie id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.ListByMovie(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load reviews")
	}
	return jsonOK(c, http.StatusOK, "reviews", reviews)
}

// ByEvent returns an event's reviews newest first.
func (h *ReviewHandler) ByEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid event id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.ListByEvent(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load reviews")
	}
	return jsonOK(c, http.StatusOK, "reviews", reviews)
}

// MovieRating returns a movie's average review rating.
func (h *ReviewHandler) MovieRating(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid movie id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	avg, err := h.Reviews.AverageForMovie(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load rating")
	}
	return jsonOK(c, http.StatusOK, "rating", echo.Map{"averageRating": avg})
}

// EventRating returns an event's average review rating.
func (h *ReviewHandler) EventRating(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid event id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	avg, err := h.Reviews.AverageForEvent(ctx, id)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not load rating")
	}
	return jsonOK(c, http.StatusOK, "rating", echo.Map{"averageRating": avg})
}

// Create posts a review as the authenticated user.  Exactly one of
// movieId/eventId must be set and the target must exist.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	if (req.MovieID == nil) == (req.EventID == nil) {
		return jsonErr(c, http.StatusBadRequest, "exactly one of movieId or eventId is required")
	}
	if req.Rating <= 0 || req.Rating > 10 {
		return jsonErr(c, http.StatusBadRequest, "rating must be between 1 and 10")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByID(ctx, currentUserID(c))
	if err != nil {
		return jsonErr(c, http.StatusUnauthorized, "unknown user")
	}

	rev := model.Review{
		UserID:   user.ID,
		UserName: user.FullName,
		Rating:   req.Rating,
		Comment:  strings.TrimSpace(req.Comment),
	}
	if req.MovieID != nil {
		if _, err := h.Movies.GetByID(ctx, *req.MovieID); err != nil {
			return jsonErr(c, http.StatusNotFound, "movie not found")
		}
		rev.MovieID = req.MovieID
		rev.ReviewType = model.ReviewTypeMovie
	} else {
		if _, err := h.Events.GetByID(ctx, *req.EventID); err != nil {
			return jsonErr(c, http.StatusNotFound, "event not found")
		}
		rev.EventID = req.EventID
		rev.ReviewType = model.ReviewTypeEvent
	}

	id, err := h.Reviews.Create(ctx, &rev)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "could not create review")
	}
	rev.ID = id
	h.refreshRating(ctx, &rev)
	return jsonOK(c, http.StatusCreated, "review created", rev)
}

// Update rewrites the rating and comment of the caller's own review.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid review id")
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Rating <= 0 || req.Rating > 10 {
		return jsonErr(c, http.StatusBadRequest, "rating must be between 1 and 10")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rev, err := h.fetchOwned(ctx, c, id)
	if err != nil {
		return reviewError(c, err)
	}
	if err := h.Reviews.Update(ctx, id, req.Rating, strings.TrimSpace(req.Comment)); err != nil {
		return reviewError(c, err)
	}
	rev.Rating = req.Rating
	rev.Comment = strings.TrimSpace(req.Comment)
	h.refreshRating(ctx, rev)
	return jsonOK(c, http.StatusOK, "review updated", rev)
}

// Delete removes the caller's own review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid review id")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rev, err := h.fetchOwned(ctx, c, id)
	if err != nil {
		return reviewError(c, err)
	}
	if err := h.Reviews.Delete(ctx, id); err != nil {
		return reviewError(c, err)
	}
	h.refreshRating(ctx, rev)
	return jsonOK(c, http.StatusOK, "review deleted", nil)
}

var errReviewForbidden = echo.NewHTTPError(http.StatusForbidden)

// fetchOwned loads a review and checks the caller may modify it.
func (h *ReviewHandler) fetchOwned(ctx context.Context, c echo.Context, id uint64) (*model.Review, error) {
	rev, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role, _ := c.Get("role").(string)
	if rev.UserID != currentUserID(c) && role != model.RoleAdmin {
		return nil, errReviewForbidden
	}
	return rev, nil
}

// refreshRating pushes the new movie average onto the catalog column.
// Events carry no stored aggregate; their rating endpoint computes on
// demand.  Failures here are logged, not surfaced: the review write
// already succeeded.
func (h *ReviewHandler) refreshRating(ctx context.Context, rev *model.Review) {
	if rev.MovieID == nil {
		return
	}
	avg, err := h.Reviews.AverageForMovie(ctx, *rev.MovieID)
	if err == nil {
		err = h.Movies.SetRating(ctx, *rev.MovieID, avg)
	}
	if err != nil {
		log.Printf("review: refresh rating for movie %d: %v", *rev.MovieID, err)
	}
}

func reviewError(c echo.Context, err error) error {
	switch err {
	case repository.ErrReviewNotFound:
		return jsonErr(c, http.StatusNotFound, "review not found")
	case errReviewForbidden:
		return jsonErr(c, http.StatusForbidden, "not your review")
	default:
		return jsonErr(c, http.StatusInternalServerError, "could not process review")
	}
}
