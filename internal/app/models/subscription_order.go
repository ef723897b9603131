package models

type SubscriptionOrder struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	ProfileID      string `json:"profileId" bson:"profileId"`
	Tier           string `json:"tier" bson:"tier"`
	AmountInPaise  int64  `json:"amountInPaise" bson:"amountInPaise"`
	Currency       string `json:"currency" bson:"currency"`
	GatewayOrderID string `json:"gatewayOrderId" bson:"gatewayOrderId"`
	PaymentID      string `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	Status         string `json:"status" bson:"status"`
	TimeModel      `bson:",inline"`
}
