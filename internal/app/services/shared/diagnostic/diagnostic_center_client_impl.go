package diagnostic

import (
	"bytes"
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/responses"
	"famhealth-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	diagnosticCenterClientInstance contracts.DiagnosticCenterClient
	onceDiagnosticCenterClient     sync.Once
)

type diagnosticCenterClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewDiagnosticCenterClient(baseUrl string, timeoutInSeconds int, logger *zap.Logger) contracts.DiagnosticCenterClient {
	onceDiagnosticCenterClient.Do(func() {
		client := &diagnosticCenterClient{
			BaseUrl: baseUrl,
			HTTPClient: &http.Client{
				Timeout: time.Duration(timeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		diagnosticCenterClientInstance = client
	})
	return diagnosticCenterClientInstance
}

func (c *diagnosticCenterClient) AcceptSharedReport(ctx context.Context, phoneNumber, reportID string) error {
	return c.postShareAction(ctx, "acceptSharedReport", phoneNumber, reportID)
}

func (c *diagnosticCenterClient) RejectSharedReport(ctx context.Context, phoneNumber, reportID string) error {
	return c.postShareAction(ctx, "rejectSharedReport", phoneNumber, reportID)
}

func (c *diagnosticCenterClient) postShareAction(ctx context.Context, action, phoneNumber, reportID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("diagnosticCenterClient.postShareAction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("action", action),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	payload := map[string]string{
		"phoneNumber": phoneNumber,
		"reportId":    reportID,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		c.Log.Error("diagnosticCenterClient.postShareAction error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/api/reports/%s", c.BaseUrl, action)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("diagnosticCenterClient.postShareAction error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("diagnosticCenterClient.postShareAction error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			bodyBytes = []byte("<unreadable body>")
		}
		remoteErr := fmt.Errorf("diagnostic-center returned %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("diagnosticCenterClient.postShareAction remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return exceptions.ErrDiagnosticCenterRequest(remoteErr, action)
	}

	c.Log.Info("diagnosticCenterClient.postShareAction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("action", action),
	)
	return nil
}

func (c *diagnosticCenterClient) FindReportsSharedWith(ctx context.Context, phoneNumber string) ([]responses.SharedReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("diagnosticCenterClient.FindReportsSharedWith called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s/api/reports/sharedWith?phoneNumber=%s", c.BaseUrl, url.QueryEscape(phoneNumber))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("diagnosticCenterClient.FindReportsSharedWith error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("diagnosticCenterClient.FindReportsSharedWith error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			bodyBytes = []byte("<unreadable body>")
		}
		remoteErr := fmt.Errorf("diagnostic-center returned %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("diagnosticCenterClient.FindReportsSharedWith remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrDiagnosticCenterRequest(remoteErr, "sharedWith")
	}

	var envelope struct {
		Success bool                     `json:"success"`
		Data    []responses.SharedReport `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		c.Log.Error("diagnosticCenterClient.FindReportsSharedWith error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDiagnosticCenterDecode(err)
	}

	c.Log.Info("diagnosticCenterClient.FindReportsSharedWith succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(envelope.Data)),
	)
	return envelope.Data, nil
}
