package client

import (
	"context"
	"fmt"
)

// CreateBooking books tickets directly, without the payment gateway.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*Booking, error) {
	var out Booking
	if err := c.post(ctx, "/api/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyBookings lists the signed-in user's bookings, newest first.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	err := c.get(ctx, "/api/bookings/my-bookings", &out)
	return out, err
}

// Booking fetches one booking.
func (c *Client) Booking(ctx context.Context, id uint64) (*Booking, error) {
	var out Booking
	if err := c.get(ctx, fmt.Sprintf("/api/bookings/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking voids a pending booking and releases its tickets.
func (c *Client) CancelBooking(ctx context.Context, id uint64) error {
	return c.post(ctx, fmt.Sprintf("/api/bookings/%d/cancel", id), nil, nil)
}
