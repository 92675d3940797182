package model

import "time"

// Movie is a catalog entry that shows can be scheduled against.
// Prices live on shows and seats, not here.
//
// Fields:
//  ID              – primary key identifier.
//  Title           – display title.
//  Description     – synopsis shown on the detail page.
//  DurationMinutes – running time.
//  Genre           – comma separated genre list.
//  Language        – primary audio language.
//  ParentalRating  – certification string (e.g. "UA", "A").
//  ReleaseDate     – theatrical release date (YYYY-MM-DD).
//  Cast, Crew      – comma separated names.
//  TrailerURL      – external trailer link.
//  DisplayImageURL – poster image.
//  BannerImageURL  – wide banner image.
//  Rating          – aggregate review rating out of 10.
//  IsActive        – soft-delete flag; inactive movies are hidden from
//                    the public catalog but remain visible to admins.
type Movie struct {
	ID              uint64    `json:"movieId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	Genre           string    `json:"genre"`
	Language        string    `json:"language"`
	ParentalRating  string    `json:"parentalRating"`
	ReleaseDate     string    `json:"releaseDate"`
	Cast            string    `json:"cast"`
	Crew            string    `json:"crew"`
	TrailerURL      string    `json:"trailerUrl"`
	DisplayImageURL string    `json:"displayImageUrl"`
	BannerImageURL  string    `json:"bannerImageUrl"`
	Rating          float64   `json:"rating"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
