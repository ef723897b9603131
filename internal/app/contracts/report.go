package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
	"io"
)

type ReportUsecase interface {
	UploadReport(ctx context.Context, userID, fileName, contentType string, file io.Reader, size int64) (*responses.UploadReport, error)
	GetReportsByUser(ctx context.Context, userID string) ([]models.Report, error)
	GetReportsByMembers(ctx context.Context, request *requests.ReportsByMembers) ([]models.Report, error)
	GetReportsByIDs(ctx context.Context, request *requests.ReportsByIDs) ([]models.Report, error)
	GetReportsSharedWith(ctx context.Context, phoneNumber string) ([]responses.SharedReport, error)
	ShareReport(ctx context.Context, request *requests.ShareReport) (*models.Report, error)
}

type ReportRepository interface {
	Insert(ctx context.Context, report *models.Report) (reportID string, err error)
	FindByID(ctx context.Context, reportID string) (*models.Report, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Report, error)
	FindByUserIDs(ctx context.Context, userIDs []string) ([]models.Report, error)
	FindByIDs(ctx context.Context, reportIDs []string) ([]models.Report, error)
	Update(ctx context.Context, report *models.Report) error
}
