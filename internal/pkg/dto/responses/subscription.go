package responses

type SubscriptionOrder struct {
	OrderID        string `json:"orderId"`
	GatewayOrderID string `json:"gatewayOrderId"`
	GatewayKeyID   string `json:"gatewayKeyId"`
	AmountInPaise  int64  `json:"amountInPaise"`
	Currency       string `json:"currency"`
	Tier           string `json:"tier"`
	Status         string `json:"status"`
}
