package client

import (
	"context"
	"fmt"
)

// Banners lists the active homepage carousel in display order.
func (c *Client) Banners(ctx context.Context) ([]Banner, error) {
	var out []Banner
	err := c.get(ctx, "/api/banners", &out)
	return out, err
}

// MovieReviews lists a movie's reviews newest first.
func (c *Client) MovieReviews(ctx context.Context, movieID uint64) ([]Review, error) {
	var out []Review
	err := c.get(ctx, fmt.Sprintf("/api/reviews/movie/%d", movieID), &out)
	return out, err
}

// EventReviews lists an event's reviews newest first.
func (c *Client) EventReviews(ctx context.Context, eventID uint64) ([]Review, error) {
	var out []Review
	err := c.get(ctx, fmt.Sprintf("/api/reviews/event/%d", eventID), &out)
	return out, err
}

type ratingData struct {
	AverageRating float64 `json:"averageRating"`
}

// MovieRating fetches a movie's average review rating.
func (c *Client) MovieRating(ctx context.Context, movieID uint64) (float64, error) {
	var out ratingData
	err := c.get(ctx, fmt.Sprintf("/api/reviews/movie/%d/rating", movieID), &out)
	return out.AverageRating, err
}

// EventRating fetches an event's average review rating.
func (c *Client) EventRating(ctx context.Context, eventID uint64) (float64, error) {
	var out ratingData
	err := c.get(ctx, fmt.Sprintf("/api/reviews/event/%d/rating", eventID), &out)
	return out.AverageRating, err
}

// PostReview creates a review as the signed-in user.
func (c *Client) PostReview(ctx context.Context, req ReviewRequest) (*Review, error) {
	var out Review
	if err := c.post(ctx, "/api/reviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReview rewrites the rating and comment of one of the signed-in
// user's reviews.
func (c *Client) UpdateReview(ctx context.Context, id uint64, req ReviewRequest) (*Review, error) {
	var out Review
	if err := c.put(ctx, fmt.Sprintf("/api/reviews/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReview removes one of the signed-in user's reviews.
func (c *Client) DeleteReview(ctx context.Context, id uint64) error {
	return c.del(ctx, fmt.Sprintf("/api/reviews/%d", id))
}
