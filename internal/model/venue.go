package model

import "time"

// Venue is a physical location (multiplex, theatre, ground) that hosts
// screens and shows.  Facilities is a free-form JSON object authored in
// the admin back office (parking, food court, accessibility notes).
type Venue struct {
	ID           uint64         `json:"venueId"`
	VenueName    string         `json:"venueName"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	Pincode      string         `json:"pincode"`
	TotalScreens int            `json:"totalScreens"`
	Facilities   map[string]any `json:"facilities,omitempty"`
	IsActive     bool           `json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// SeatLayout describes how an admin laid out a screen: the ordered row
// labels and the number of seats in each row.  It is stored as JSON on
// the screen and drives seat generation for every show scheduled there.
type SeatLayout struct {
	Rows        []string       `json:"rows"`
	SeatsPerRow map[string]int `json:"seatsPerRow"`
}

// TotalSeats sums the layout's per-row seat counts.
func (l *SeatLayout) TotalSeats() int {
	total := 0
	for _, row := range l.Rows {
		total += l.SeatsPerRow[row]
	}
	return total
}

// Screen belongs to a venue and carries the seat layout used when
// generating per-show seats.
//
// Fields:
//  ID           – primary key identifier.
//  VenueID      – owning venue.
//  ScreenNumber – 1-based number within the venue.
//  ScreenType   – 2D, 3D, IMAX, 4DX.
//  SoundSystem  – e.g. "Dolby Atmos", "DTS", "Standard".
//  SeatLayout   – row labels and seats per row, JSON authored by admins.
//  TotalSeats   – denormalized seat count for listings.
//  IsActive     – soft-delete flag.
type Screen struct {
	ID           uint64      `json:"screenId"`
	VenueID      uint64      `json:"venueId"`
	ScreenNumber int         `json:"screenNumber"`
	ScreenType   string      `json:"screenType"`
	SoundSystem  string      `json:"soundSystem"`
	SeatLayout   *SeatLayout `json:"seatLayout,omitempty"`
	TotalSeats   int         `json:"totalSeats"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
