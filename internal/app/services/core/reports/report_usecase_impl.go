package reports

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository  contracts.ReportRepository
	ProfileRepository contracts.ProfileRepository
	MinioStorage      contracts.Storage
	DiagnosticCenter  contracts.DiagnosticCenterClient
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewReportUsecase(
	reportMongoRepository contracts.ReportRepository,
	profileMongoRepository contracts.ProfileRepository,
	minioStorage contracts.Storage,
	diagnosticCenterClient contracts.DiagnosticCenterClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReportUsecase {
	return &reportUsecase{
		ReportRepository:  reportMongoRepository,
		ProfileRepository: profileMongoRepository,
		MinioStorage:      minioStorage,
		DiagnosticCenter:  diagnosticCenterClient,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *reportUsecase) UploadReport(ctx context.Context, userID, fileName, contentType string, file io.Reader, size int64) (*responses.UploadReport, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	objectName := fmt.Sprintf("%s/%s-%s", userID, uuid.NewString(), fileName)
	reportURL, err := uc.MinioStorage.UploadObject(ctx, uc.InternalConfig.Minio.ReportBucketName, objectName, contentType, file, size)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		UserID:     userID,
		FileName:   fileName,
		URL:        reportURL,
		Status:     constvars.ReportStatusPending,
		Parameters: []models.ReportParameter{},
		SharedWith: []models.ReportShare{},
	}
	report.SetCreatedNow()

	reportID, err := uc.ReportRepository.Insert(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = reportID

	// Profile keeps a denormalized list of its report IDs; losing this
	// write only costs the shortcut, so it is best effort.
	profile.Reports = append(profile.Reports, reportID)
	profile.SetUpdatedNow()
	err = uc.ProfileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		uc.Log.Warn("reportUsecase.UploadReport failed appending report reference",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingReportIDKey, reportID),
			zap.Error(err),
		)
	}

	return &responses.UploadReport{
		ReportID: reportID,
		FileName: fileName,
		URL:      reportURL,
		Status:   report.Status,
	}, nil
}

func (uc *reportUsecase) GetReportsByUser(ctx context.Context, userID string) ([]models.Report, error) {
	return uc.ReportRepository.FindByUserID(ctx, userID)
}

func (uc *reportUsecase) GetReportsByMembers(ctx context.Context, request *requests.ReportsByMembers) ([]models.Report, error) {
	return uc.ReportRepository.FindByUserIDs(ctx, request.MemberIDs)
}

func (uc *reportUsecase) GetReportsByIDs(ctx context.Context, request *requests.ReportsByIDs) ([]models.Report, error) {
	return uc.ReportRepository.FindByIDs(ctx, request.ReportIDs)
}

func (uc *reportUsecase) GetReportsSharedWith(ctx context.Context, phoneNumber string) ([]responses.SharedReport, error) {
	normalizedPhone := utils.NormalizePhoneNumber(phoneNumber)
	sharedReports, err := uc.DiagnosticCenter.FindReportsSharedWith(ctx, normalizedPhone)
	if err != nil {
		return nil, err
	}

	// Blocked and rejected entries never reach the client.
	visible := make([]responses.SharedReport, 0, len(sharedReports))
	for _, sharedReport := range sharedReports {
		if sharedReport.Status == constvars.ReportStatusBlocked || sharedReport.Status == constvars.ReportStatusRejected {
			continue
		}
		visible = append(visible, sharedReport)
	}
	return visible, nil
}

func (uc *reportUsecase) ShareReport(ctx context.Context, request *requests.ShareReport) (*models.Report, error) {
	report, err := uc.ReportRepository.FindByID(ctx, request.ReportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotExist(nil)
	}
	if report.UserID != request.ProfileID {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("only the report owner can share it"))
	}

	recipientPhone := utils.NormalizePhoneNumber(request.PhoneNumber)
	for _, share := range report.SharedWith {
		if share.PhoneNumber == recipientPhone {
			return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("report is already shared with this number"))
		}
	}

	recipientProfileID := ""
	recipientProfile, err := uc.ProfileRepository.FindByPhoneNumber(ctx, recipientPhone)
	if err == nil && recipientProfile != nil {
		recipientProfileID = recipientProfile.ID
	}

	report.SharedWith = append(report.SharedWith, models.ReportShare{
		ProfileID:   recipientProfileID,
		PhoneNumber: recipientPhone,
		SharedAt:    time.Now(),
	})
	report.SetUpdatedNow()

	err = uc.ReportRepository.Update(ctx, report)
	if err != nil {
		return nil, err
	}
	return report, nil
}
