package client

import (
	"context"
	"errors"
	"fmt"
)

// ErrVerifyUnconfirmed is returned when payment verification could not
// reach the service. The gateway may well have captured the payment, so
// callers must treat the booking as possibly confirmed and re-check
// rather than re-pay.
var ErrVerifyUnconfirmed = errors.New("payment verification unconfirmed: request did not complete")

// CreateOrder reserves the selection under a pending booking and opens
// a gateway order. The returned Order feeds the hosted payment widget.
func (c *Client) CreateOrder(ctx context.Context, req BookingRequest) (*Order, error) {
	var out Order
	if err := c.post(ctx, "/api/payments/create-order", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type verifyRequest struct {
	OrderID   string `json:"razorpayOrderId"`
	PaymentID string `json:"razorpayPaymentId"`
	Signature string `json:"razorpaySignature"`
}

// VerifyPayment confirms a payment from the gateway's order, payment
// and signature ids and returns the confirmed booking. An API rejection
// (bad signature, unknown order) comes back as *APIError; a transport
// failure is wrapped in ErrVerifyUnconfirmed because the money may have
// moved even though the answer was lost. No automatic retry.
func (c *Client) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*Booking, error) {
	var out Booking
	err := c.post(ctx, "/api/payments/verify", verifyRequest{
		OrderID: orderID, PaymentID: paymentID, Signature: signature,
	}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrVerifyUnconfirmed, err)
	}
	return &out, nil
}

// CancelPayment voids a pending booking when the user abandons the
// gateway widget or it reports failure.
func (c *Client) CancelPayment(ctx context.Context, bookingID uint64) error {
	return c.post(ctx, fmt.Sprintf("/api/payments/cancel/%d", bookingID), nil, nil)
}
