package model

import "time"

// Review type discriminator: a review targets either a movie or an
// event, mirrored by which of MovieID/EventID is set.
const (
	ReviewTypeMovie = "MOVIE"
	ReviewTypeEvent = "EVENT"
)

// Review is a user's rating and comment on a movie or event.  UserName
// is denormalized at creation so review lists render without a join.
type Review struct {
	ID         uint64    `json:"reviewId"`
	UserID     uint64    `json:"userId"`
	UserName   string    `json:"userName"`
	MovieID    *uint64   `json:"movieId,omitempty"`
	EventID    *uint64   `json:"eventId,omitempty"`
	ReviewType string    `json:"reviewType"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
