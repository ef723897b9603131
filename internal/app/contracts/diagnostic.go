package contracts

import (
	"context"
	"famhealth-service/internal/pkg/dto/responses"
)

// DiagnosticCenterClient talks to the external diagnostic-center service,
// which is the source of truth for report-sharing state.
type DiagnosticCenterClient interface {
	AcceptSharedReport(ctx context.Context, phoneNumber, reportID string) error
	RejectSharedReport(ctx context.Context, phoneNumber, reportID string) error
	FindReportsSharedWith(ctx context.Context, phoneNumber string) ([]responses.SharedReport, error)
}
