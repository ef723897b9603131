package payment_gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	paymentGatewayInstance contracts.PaymentGatewayService
	oncePaymentGateway     sync.Once
)

type paymentGateway struct {
	BaseUrl    string
	keyID      string
	keySecret  string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPaymentGateway(baseUrl, keyID, keySecret string, timeoutInSeconds int, logger *zap.Logger) contracts.PaymentGatewayService {
	oncePaymentGateway.Do(func() {
		gateway := &paymentGateway{
			BaseUrl:   baseUrl,
			keyID:     keyID,
			keySecret: keySecret,
			HTTPClient: &http.Client{
				Timeout: time.Duration(timeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		paymentGatewayInstance = gateway
	})
	return paymentGatewayInstance
}

func (g *paymentGateway) KeyID() string {
	return g.keyID
}

func (g *paymentGateway) CreateOrder(ctx context.Context, amountInPaise int64, currency, receiptID string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("paymentGateway.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount", amountInPaise),
	)

	payload := map[string]interface{}{
		"amount":   amountInPaise,
		"currency": currency,
		"receipt":  receiptID,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		g.Log.Error("paymentGateway.CreateOrder error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/v1/orders", g.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		g.Log.Error("paymentGateway.CreateOrder error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		g.Log.Error("paymentGateway.CreateOrder error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			bodyBytes = []byte("<unreadable body>")
		}
		remoteErr := fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, string(bodyBytes))
		g.Log.Error("paymentGateway.CreateOrder remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return "", exceptions.ErrPaymentGatewayRequest(remoteErr, "create order")
	}

	var orderResponse struct {
		ID string `json:"id"`
	}
	err = json.NewDecoder(resp.Body).Decode(&orderResponse)
	if err != nil {
		g.Log.Error("paymentGateway.CreateOrder error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPaymentGatewayDecode(err)
	}

	g.Log.Info("paymentGateway.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderResponse.ID),
	)
	return orderResponse.ID, nil
}

// VerifyPaymentSignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// with the key secret and compares it to the signature the gateway sent back
// through the client.
func (g *paymentGateway) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, gatewaySignature string) error {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(gatewaySignature)) {
		return exceptions.ErrPaymentSignatureMismatch(fmt.Errorf("signature does not match order %s", gatewayOrderID))
	}
	return nil
}
