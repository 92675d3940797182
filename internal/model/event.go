package model

import "time"

// Event is a live performance (concert, stand-up, sports) in the
// catalog.  Events can be scheduled either on regular screens (seated
// shows) or on open grounds sold through pricing zones.
//
// Fields:
//  ID              – primary key identifier.
//  Title           – display title.
//  Description     – long form description.
//  Category        – e.g. "Music", "Comedy", "Sports".
//  EventDate       – headline date of the event (YYYY-MM-DD).
//  EventTime       – headline start time (HH:MM:SS).
//  DurationMinutes – expected duration.
//  ArtistOrTeam    – performer or team name.
//  Language        – spoken language, when relevant.
//  AgeRestriction  – minimum age note (e.g. "18+").
//  IsActive        – soft-delete flag.
type Event struct {
	ID              uint64    `json:"eventId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	EventDate       string    `json:"eventDate"`
	EventTime       string    `json:"eventTime"`
	DurationMinutes int       `json:"durationMinutes"`
	ArtistOrTeam    string    `json:"artistOrTeam"`
	Language        string    `json:"language"`
	AgeRestriction  string    `json:"ageRestriction"`
	TrailerURL      string    `json:"trailerUrl"`
	DisplayImageURL string    `json:"displayImageUrl"`
	BannerImageURL  string    `json:"bannerImageUrl"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
