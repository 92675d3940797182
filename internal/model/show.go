package model

import "time"

// Show statuses are expressed through IsActive rather than an enum: the
// admin surface exposes distinct soft-delete and activate endpoints and
// the booking flow only ever sees active shows.

// Show is a scheduled screening of a movie or a seated event at a
// venue/screen.  Exactly one of MovieID and EventID is set.  Prices are
// whole currency units (rupees): BasePrice is the default seat price
// applied when seats are generated, but each seat carries its own price
// and totals are always summed per seat.
//
// Fields:
//  ID             – primary key identifier.
//  MovieID        – movie being screened, nil for event shows.
//  EventID        – seated event, nil for movie shows.
//  VenueID        – hosting venue.
//  ScreenID       – screen within the venue.
//  ShowDate       – date of the show (YYYY-MM-DD).
//  ShowTime       – start time (HH:MM:SS).
//  BasePrice      – default per-seat price in rupees.
//  TotalSeats     – seats generated for this show.
//  AvailableSeats – seats not yet booked; maintained by the booking and
//                   payment flows.
//  IsActive       – soft-delete flag.
type Show struct {
	ID             uint64    `json:"showId"`
	MovieID        *uint64   `json:"movieId,omitempty"`
	EventID        *uint64   `json:"eventId,omitempty"`
	VenueID        uint64    `json:"venueId"`
	ScreenID       uint64    `json:"screenId"`
	ShowDate       string    `json:"showDate"`
	ShowTime       string    `json:"showTime"`
	BasePrice      int64     `json:"basePrice"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PricingZone is a named capacity pool sold in place of discrete seats
// for open-ground events.  AvailableCapacity starts equal to Capacity
// and is decremented as zone tickets are confirmed.
type PricingZone struct {
	Name              string `json:"name"`
	Price             int64  `json:"price"`
	Capacity          int    `json:"capacity"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// OpenEventShow is a show without discrete seats: an open-ground event
// instance sold through capacity-limited pricing zones.
type OpenEventShow struct {
	ID                uint64        `json:"openShowId"`
	EventID           uint64        `json:"eventId"`
	ShowDate          string        `json:"showDate"`
	ShowTime          string        `json:"showTime"`
	PricingZones      []PricingZone `json:"pricingZones"`
	TotalCapacity     int           `json:"totalCapacity"`
	AvailableCapacity int           `json:"availableCapacity"`
	IsActive          bool          `json:"isActive"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}
