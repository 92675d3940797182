package model

import "time"

// Banner is a homepage carousel entry.  A banner may point at a movie,
// an event, or an arbitrary link; DisplayOrder drives carousel order.
type Banner struct {
	ID             uint64    `json:"bannerId"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	MovieID        *uint64   `json:"movieId,omitempty"`
	EventID        *uint64   `json:"eventId,omitempty"`
	BannerImageURL string    `json:"bannerImageUrl"`
	DisplayOrder   int       `json:"displayOrder"`
	LinkURL        string    `json:"linkUrl"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
