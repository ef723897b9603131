package reports

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReportRepository struct {
	reports map[string]*models.Report
	nextID  int
}

func newFakeReportRepository(reports ...*models.Report) *fakeReportRepository {
	repo := &fakeReportRepository{reports: map[string]*models.Report{}}
	for _, report := range reports {
		repo.reports[report.ID] = report
	}
	return repo
}

func (f *fakeReportRepository) Insert(_ context.Context, report *models.Report) (string, error) {
	f.nextID++
	id := fmt.Sprintf("report-%d", f.nextID)
	stored := *report
	stored.ID = id
	f.reports[id] = &stored
	return id, nil
}

func (f *fakeReportRepository) FindByID(_ context.Context, reportID string) (*models.Report, error) {
	report, ok := f.reports[reportID]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (f *fakeReportRepository) FindByUserID(_ context.Context, userID string) ([]models.Report, error) {
	result := []models.Report{}
	for _, report := range f.reports {
		if report.UserID == userID {
			result = append(result, *report)
		}
	}
	return result, nil
}

func (f *fakeReportRepository) FindByUserIDs(_ context.Context, userIDs []string) ([]models.Report, error) {
	result := []models.Report{}
	for _, report := range f.reports {
		for _, userID := range userIDs {
			if report.UserID == userID {
				result = append(result, *report)
			}
		}
	}
	return result, nil
}

func (f *fakeReportRepository) FindByIDs(_ context.Context, reportIDs []string) ([]models.Report, error) {
	result := []models.Report{}
	for _, reportID := range reportIDs {
		if report, ok := f.reports[reportID]; ok {
			result = append(result, *report)
		}
	}
	return result, nil
}

func (f *fakeReportRepository) Update(_ context.Context, report *models.Report) error {
	stored := *report
	f.reports[report.ID] = &stored
	return nil
}

type fakeProfileRepository struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepository(profiles ...*models.Profile) *fakeProfileRepository {
	repo := &fakeProfileRepository{profiles: map[string]*models.Profile{}}
	for _, profile := range profiles {
		repo.profiles[profile.ID] = profile
	}
	return repo
}

func (f *fakeProfileRepository) CreateProfile(_ context.Context, profile *models.Profile) (string, error) {
	f.profiles[profile.ID] = profile
	return profile.ID, nil
}

func (f *fakeProfileRepository) FindByID(_ context.Context, profileID string) (*models.Profile, error) {
	return f.profiles[profileID], nil
}

func (f *fakeProfileRepository) FindByPhoneNumber(_ context.Context, phoneNumber string) (*models.Profile, error) {
	for _, profile := range f.profiles {
		if profile.PhoneNumber == phoneNumber {
			return profile, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepository) UpdateProfile(_ context.Context, profile *models.Profile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepository) DeleteByID(_ context.Context, profileID string) error {
	delete(f.profiles, profileID)
	return nil
}

type fakeStorage struct {
	uploadedObjects []string
}

func (f *fakeStorage) UploadObject(_ context.Context, bucketName, objectName, _ string, _ io.Reader, _ int64) (string, error) {
	f.uploadedObjects = append(f.uploadedObjects, objectName)
	return fmt.Sprintf("https://storage.example.com/%s/%s", bucketName, objectName), nil
}

func (f *fakeStorage) GetPresignedURL(_ context.Context, bucketName, objectName string, _ time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.example.com/%s/%s?signed", bucketName, objectName), nil
}

type fakeDiagnosticCenterClient struct {
	sharedReports []responses.SharedReport
}

func (f *fakeDiagnosticCenterClient) AcceptSharedReport(_ context.Context, _, _ string) error {
	return nil
}

func (f *fakeDiagnosticCenterClient) RejectSharedReport(_ context.Context, _, _ string) error {
	return nil
}

func (f *fakeDiagnosticCenterClient) FindReportsSharedWith(_ context.Context, _ string) ([]responses.SharedReport, error) {
	return f.sharedReports, nil
}

func newTestUsecase(reportRepo contracts.ReportRepository, profileRepo contracts.ProfileRepository, storage contracts.Storage, diagnostic contracts.DiagnosticCenterClient) contracts.ReportUsecase {
	internalConfig := &config.InternalConfig{
		Minio: config.AppMinio{ReportBucketName: "reports"},
	}
	return NewReportUsecase(reportRepo, profileRepo, storage, diagnostic, internalConfig, zap.NewNop())
}

func TestUploadReport(t *testing.T) {
	t.Run("stores object and pending report row", func(t *testing.T) {
		reportRepo := newFakeReportRepository()
		profileRepo := newFakeProfileRepository(&models.Profile{ID: "user-1", Reports: []string{}})
		storage := &fakeStorage{}
		uc := newTestUsecase(reportRepo, profileRepo, storage, &fakeDiagnosticCenterClient{})

		result, err := uc.UploadReport(context.Background(), "user-1", "cbc.pdf", "application/pdf", strings.NewReader("pdf-bytes"), 9)

		require.NoError(t, err)
		assert.Equal(t, constvars.ReportStatusPending, result.Status)
		assert.NotEmpty(t, result.ReportID)
		require.Len(t, storage.uploadedObjects, 1)
		assert.True(t, strings.HasPrefix(storage.uploadedObjects[0], "user-1/"))
		assert.True(t, strings.HasSuffix(storage.uploadedObjects[0], "-cbc.pdf"))

		stored, err := reportRepo.FindByID(context.Background(), result.ReportID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "user-1", stored.UserID)

		profile, err := profileRepo.FindByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Contains(t, profile.Reports, result.ReportID)
	})

	t.Run("rejects unknown profile", func(t *testing.T) {
		uc := newTestUsecase(newFakeReportRepository(), newFakeProfileRepository(), &fakeStorage{}, &fakeDiagnosticCenterClient{})

		_, err := uc.UploadReport(context.Background(), "ghost", "cbc.pdf", "application/pdf", strings.NewReader("pdf-bytes"), 9)

		require.Error(t, err)
	})
}

func TestGetReportsSharedWith(t *testing.T) {
	t.Run("filters out blocked and rejected entries", func(t *testing.T) {
		diagnostic := &fakeDiagnosticCenterClient{
			sharedReports: []responses.SharedReport{
				{ReportID: "r1", Status: constvars.ReportStatusPending},
				{ReportID: "r2", Status: constvars.ReportStatusBlocked},
				{ReportID: "r3", Status: constvars.ReportStatusReviewed},
				{ReportID: "r4", Status: constvars.ReportStatusRejected},
			},
		}
		uc := newTestUsecase(newFakeReportRepository(), newFakeProfileRepository(), &fakeStorage{}, diagnostic)

		visible, err := uc.GetReportsSharedWith(context.Background(), "91 98765-00003")

		require.NoError(t, err)
		require.Len(t, visible, 2)
		assert.Equal(t, "r1", visible[0].ReportID)
		assert.Equal(t, "r3", visible[1].ReportID)
	})

	t.Run("empty remote result stays empty", func(t *testing.T) {
		uc := newTestUsecase(newFakeReportRepository(), newFakeProfileRepository(), &fakeStorage{}, &fakeDiagnosticCenterClient{})

		visible, err := uc.GetReportsSharedWith(context.Background(), "+919876500003")

		require.NoError(t, err)
		assert.Empty(t, visible)
	})
}

func TestShareReport(t *testing.T) {
	ownedReport := func() *models.Report {
		return &models.Report{
			ID:         "report-1",
			UserID:     "owner-1",
			FileName:   "cbc.pdf",
			Status:     constvars.ReportStatusReviewed,
			SharedWith: []models.ReportShare{},
		}
	}

	t.Run("appends recipient with resolved profile id", func(t *testing.T) {
		reportRepo := newFakeReportRepository(ownedReport())
		profileRepo := newFakeProfileRepository(&models.Profile{ID: "recipient-1", PhoneNumber: "+919876500003"})
		uc := newTestUsecase(reportRepo, profileRepo, &fakeStorage{}, &fakeDiagnosticCenterClient{})

		shared, err := uc.ShareReport(context.Background(), &requests.ShareReport{
			ReportID:    "report-1",
			ProfileID:   "owner-1",
			PhoneNumber: "91 98765-00003",
		})

		require.NoError(t, err)
		require.Len(t, shared.SharedWith, 1)
		assert.Equal(t, "+919876500003", shared.SharedWith[0].PhoneNumber)
		assert.Equal(t, "recipient-1", shared.SharedWith[0].ProfileID)
	})

	t.Run("only the owner can share", func(t *testing.T) {
		uc := newTestUsecase(newFakeReportRepository(ownedReport()), newFakeProfileRepository(), &fakeStorage{}, &fakeDiagnosticCenterClient{})

		_, err := uc.ShareReport(context.Background(), &requests.ShareReport{
			ReportID:    "report-1",
			ProfileID:   "someone-else",
			PhoneNumber: "+919876500003",
		})

		require.Error(t, err)
	})

	t.Run("rejects duplicate recipient", func(t *testing.T) {
		report := ownedReport()
		report.SharedWith = []models.ReportShare{{PhoneNumber: "+919876500003"}}
		uc := newTestUsecase(newFakeReportRepository(report), newFakeProfileRepository(), &fakeStorage{}, &fakeDiagnosticCenterClient{})

		_, err := uc.ShareReport(context.Background(), &requests.ShareReport{
			ReportID:    "report-1",
			ProfileID:   "owner-1",
			PhoneNumber: "91 98765-00003",
		})

		require.Error(t, err)
	})

	t.Run("unknown report returns not found", func(t *testing.T) {
		uc := newTestUsecase(newFakeReportRepository(), newFakeProfileRepository(), &fakeStorage{}, &fakeDiagnosticCenterClient{})

		_, err := uc.ShareReport(context.Background(), &requests.ShareReport{
			ReportID:    "ghost",
			ProfileID:   "owner-1",
			PhoneNumber: "+919876500003",
		})

		require.Error(t, err)
	})
}
