package model

import (
	"strconv"
	"time"
)

// Seat types mirror the values accepted by the seats.seat_type column.
const (
	SeatTypeRegular  = "REGULAR"
	SeatTypePremium  = "PREMIUM"
	SeatTypeEconomy  = "ECONOMY"
	SeatTypeRecliner = "RECLINER"
	SeatTypeVIP      = "VIP"
)

// Seat belongs to exactly one show and is identified within it by its
// row label and number ("A" + 12 -> "A12").  Availability is the only
// field mutated after generation: booking reserves a seat by flipping
// IsAvailable, cancellation or expiry flips it back.  Blocked seats are
// withheld from sale entirely (house seats, broken recliners).
//
// Fields:
//  ID          – primary key identifier.
//  ShowID      – owning show; seats are generated per show.
//  RowLabel    – row letter(s), unique with SeatNumber per show.
//  SeatNumber  – 1-based position within the row.
//  SeatType    – one of the SeatType constants.
//  Price       – this seat's price in rupees; may differ per row/type.
//  IsAvailable – false once booked.
//  IsBlocked   – never sellable while true.
type Seat struct {
	ID          uint64    `json:"seatId"`
	ShowID      uint64    `json:"showId"`
	RowLabel    string    `json:"rowLabel"`
	SeatNumber  int       `json:"seatNumber"`
	SeatType    string    `json:"seatType"`
	Price       int64     `json:"price"`
	IsAvailable bool      `json:"isAvailable"`
	IsBlocked   bool      `json:"isBlocked"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Label returns the customer-facing seat label, e.g. "A12".
func (s Seat) Label() string {
	return s.RowLabel + strconv.Itoa(s.SeatNumber)
}
