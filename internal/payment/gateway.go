// Package payment wraps the Razorpay payment gateway: order creation for
// checkout and signature verification for payment confirmation.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// ErrOrderCreate is returned when the gateway rejects or fails an order
// creation request.
var ErrOrderCreate = errors.New("payment: order creation failed")

// Gateway creates payment orders and verifies payment signatures.
type Gateway struct {
	client *razorpay.Client
	secret string
}

// NewGateway builds a Gateway from the key pair configured for the
// Razorpay account.
func NewGateway(keyID, keySecret string) *Gateway {
	return &Gateway{
		client: razorpay.NewClient(keyID, keySecret),
		secret: keySecret,
	}
}

// Order is the subset of the gateway order the checkout flow needs.
type Order struct {
	ID       string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder opens a gateway order for amountRupees. The gateway takes
// amounts in the currency's smallest unit, so rupees are multiplied by
// 100 on the way out. The booking reference doubles as the receipt so
// gateway records can be traced back to bookings.
func (g *Gateway) CreateOrder(amountRupees int64, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountRupees * 100,
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreate, err)
	}
	id, _ := body["id"].(string)
	if id == "" {
		return nil, ErrOrderCreate
	}
	return &Order{
		ID:       id,
		Amount:   amountRupees * 100,
		Currency: "INR",
		Receipt:  receipt,
	}, nil
}

// VerifySignature checks the gateway's payment signature: an
// HMAC-SHA256 of "orderID|paymentID" keyed with the account secret.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.secret, orderID, paymentID, signature)
}

// VerifySignature verifies a Razorpay payment signature against the
// given secret using a constant-time comparison.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
