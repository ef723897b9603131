package contracts

import "context"

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amountInPaise int64, currency, receiptID string) (gatewayOrderID string, err error)
	VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, gatewaySignature string) error
	KeyID() string
}
