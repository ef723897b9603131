package requests

type CreateSubscriptionOrder struct {
	ProfileID string `json:"profileId" validate:"required"`
	Tier      string `json:"tier" validate:"required,oneof=plus premium"`
}

type ConfirmSubscriptionOrder struct {
	OrderID          string `json:"orderId" validate:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" validate:"required"`
	GatewaySignature string `json:"gatewaySignature" validate:"required"`
}
