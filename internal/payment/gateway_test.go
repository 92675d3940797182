package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const (
		secret    = "gateway-secret"
		orderID   = "order_MkWkzhvQ5iBBG0"
		paymentID = "pay_MkWlD9c2Qx4N1T"
	)
	good := sign(secret, orderID, paymentID)

	assert.True(t, VerifySignature(secret, orderID, paymentID, good))
	assert.False(t, VerifySignature(secret, orderID, paymentID, "deadbeef"))
	assert.False(t, VerifySignature("other-secret", orderID, paymentID, good))
	assert.False(t, VerifySignature(secret, orderID, "pay_other", good))
	assert.False(t, VerifySignature(secret, orderID, paymentID, ""))
}

func TestGatewayVerifySignatureUsesAccountSecret(t *testing.T) {
	g := NewGateway("key_id", "account-secret")
	sig := sign("account-secret", "order_1", "pay_1")
	assert.True(t, g.VerifySignature("order_1", "pay_1", sig))
	assert.False(t, g.VerifySignature("order_1", "pay_2", sig))
}
