package payment_gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	gateway := &paymentGateway{keySecret: "test-secret"}

	t.Run("accepts matching signature", func(t *testing.T) {
		signature := signPayment("test-secret", "order_123", "pay_456")
		assert.NoError(t, gateway.VerifyPaymentSignature("order_123", "pay_456", signature))
	})

	t.Run("rejects signature made with another secret", func(t *testing.T) {
		signature := signPayment("wrong-secret", "order_123", "pay_456")
		assert.Error(t, gateway.VerifyPaymentSignature("order_123", "pay_456", signature))
	})

	t.Run("rejects signature for a different order", func(t *testing.T) {
		signature := signPayment("test-secret", "order_999", "pay_456")
		assert.Error(t, gateway.VerifyPaymentSignature("order_123", "pay_456", signature))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		assert.Error(t, gateway.VerifyPaymentSignature("order_123", "pay_456", ""))
	})
}
