package model

import "time"

// Booking statuses.  PENDING bookings hold their seats until payment
// verification succeeds or the expiry worker cancels them.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
)

// Payment statuses carried on the booking itself; there is no separate
// payments aggregate because the gateway owns the payment record.
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

// ZoneBooking is one line of an open-event booking: how many tickets
// were bought in a named pricing zone and at what per-ticket price.
// Stored as a JSON array on the booking.
type ZoneBooking struct {
	ZoneName       string `json:"zoneName"`
	Quantity       int    `json:"quantity"`
	PricePerTicket int64  `json:"pricePerTicket"`
}

// BookingSeat links a booking to one reserved seat, freezing the price
// the seat had at booking time.  SeatLabel is denormalized so booking
// listings do not need a join back to seats.
type BookingSeat struct {
	ID        uint64 `json:"bookingSeatId"`
	BookingID uint64 `json:"bookingId"`
	SeatID    uint64 `json:"seatId"`
	SeatLabel string `json:"seatLabel"`
	SeatPrice int64  `json:"seatPrice"`
}

// Booking is the purchase record created at checkout.  Exactly one of
// ShowID and OpenShowID is set.  For seated shows Seats carries the
// reserved seats; for open events ZoneBookings carries the per-zone
// ticket counts.  TotalAmount is always the sum of per-seat prices or
// of zone price × quantity, never seat count × base price.
//
// Gateway fields: OrderID is assigned when the payment order is created,
// PaymentID and Signature arrive with a successful verification.
type Booking struct {
	ID            uint64        `json:"bookingId"`
	UserID        uint64        `json:"userId"`
	ShowID        *uint64       `json:"showId,omitempty"`
	OpenShowID    *uint64       `json:"openShowId,omitempty"`
	Reference     string        `json:"bookingReference"`
	TotalSeats    int           `json:"totalSeats"`
	TotalAmount   int64         `json:"totalAmount"`
	BookingStatus string        `json:"bookingStatus"`
	PaymentStatus string        `json:"paymentStatus"`
	OrderID       string        `json:"orderId,omitempty"`
	PaymentID     string        `json:"paymentId,omitempty"`
	Signature     string        `json:"-"`
	Seats         []BookingSeat `json:"seats,omitempty"`
	ZoneBookings  []ZoneBooking `json:"zoneBookings,omitempty"`
	BookingDate   time.Time     `json:"bookingDate"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
