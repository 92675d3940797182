// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published once a payment has been verified and
// the booking confirmed. It carries enough detail for downstream consumers
// (notification, analytics, audit) to act without querying the primary
// database.
type BookingConfirmedEvent struct {
	BookingID        uint64   `json:"booking_id"`
	BookingReference string   `json:"booking_reference"`
	UserID           uint64   `json:"user_id"`
	UserEmail        string   `json:"user_email"`
	ShowID           uint64   `json:"show_id,omitempty"`
	OpenShowID       uint64   `json:"open_show_id,omitempty"`
	ItemTitle        string   `json:"item_title"`
	ShowDate         string   `json:"show_date"`
	ShowTime         string   `json:"show_time"`
	SeatLabels       []string `json:"seats,omitempty"`
	ZoneSummary      string   `json:"zones,omitempty"`
	TotalTickets     int      `json:"total_tickets"`
	TotalAmount      int64    `json:"total_amount"`
	ConfirmedAt      string   `json:"confirmed_at"`
}
