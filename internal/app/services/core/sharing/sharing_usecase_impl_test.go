package sharing

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
	"famhealth-service/internal/pkg/exceptions"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSharedMemberRepository struct {
	rows   map[string]*models.SharedMember
	nextID int
}

func newFakeSharedMemberRepository() *fakeSharedMemberRepository {
	return &fakeSharedMemberRepository{rows: map[string]*models.SharedMember{}}
}

func (f *fakeSharedMemberRepository) Insert(_ context.Context, sharedMember *models.SharedMember) (string, error) {
	f.nextID++
	id := fmt.Sprintf("share-%d", f.nextID)
	stored := *sharedMember
	stored.ID = id
	f.rows[id] = &stored
	return id, nil
}

func (f *fakeSharedMemberRepository) FindByID(_ context.Context, shareID string) (*models.SharedMember, error) {
	row, ok := f.rows[shareID]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeSharedMemberRepository) FindPendingByReceiverContact(_ context.Context, receiverContact string) ([]models.SharedMember, error) {
	result := []models.SharedMember{}
	for _, row := range f.rows {
		if row.ReceiverContact == receiverContact && row.Status == constvars.ShareStatusPending {
			result = append(result, *row)
		}
	}
	return result, nil
}

func (f *fakeSharedMemberRepository) FindPendingByMemberAndReceiver(_ context.Context, memberID, sharerProfileID, receiverContact string) (*models.SharedMember, error) {
	for _, row := range f.rows {
		if row.MemberID == memberID && row.SharerProfileID == sharerProfileID && row.ReceiverContact == receiverContact && row.Status == constvars.ShareStatusPending {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSharedMemberRepository) UpdateStatus(_ context.Context, shareID, status string) error {
	row, ok := f.rows[shareID]
	if !ok {
		return exceptions.ErrMongoDBUpdateDocument(nil)
	}
	row.Status = status
	return nil
}

func (f *fakeSharedMemberRepository) DeleteByID(_ context.Context, shareID string) error {
	delete(f.rows, shareID)
	return nil
}

func (f *fakeSharedMemberRepository) DeleteByMemberAndReceiver(_ context.Context, memberID, sharerProfileID, receiverContact string) error {
	for id, row := range f.rows {
		if row.MemberID == memberID && row.SharerProfileID == sharerProfileID && row.ReceiverContact == receiverContact {
			delete(f.rows, id)
		}
	}
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
	id := fmt.Sprintf("profile-%d", len(f.profiles)+1)
	profile.ID = id
	f.profiles[id] = profile
	return id, nil
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

type fakeRedisRepository struct {
	deletedKeys []string
}

func (f *fakeRedisRepository) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

type fakeMailerService struct {
	sent []*requests.EmailPayload
}

func (f *fakeMailerService) SendEmail(_ context.Context, request *requests.EmailPayload) error {
	f.sent = append(f.sent, request)
	return nil
}

type fakeDiagnosticCenterClient struct {
	accepted [][2]string
	rejected [][2]string
}

func (f *fakeDiagnosticCenterClient) AcceptSharedReport(_ context.Context, phoneNumber, reportID string) error {
	f.accepted = append(f.accepted, [2]string{phoneNumber, reportID})
	return nil
}

func (f *fakeDiagnosticCenterClient) RejectSharedReport(_ context.Context, phoneNumber, reportID string) error {
	f.rejected = append(f.rejected, [2]string{phoneNumber, reportID})
	return nil
}

func (f *fakeDiagnosticCenterClient) FindReportsSharedWith(_ context.Context, _ string) ([]responses.SharedReport, error) {
	return nil, nil
}

func sharerProfileFixture() *models.Profile {
	return &models.Profile{
		ID:          "sharer-1",
		Name:        "Asha",
		PhoneNumber: "+919876500001",
		Members: []models.Member{
			{MemberID: "member-1", Relation: "daughter", PhoneNumber: "+919876500002", SharedWith: []models.MemberShare{}},
		},
		SharedMembers: []models.SharedMemberRef{},
	}
}

func receiverProfileFixture() *models.Profile {
	return &models.Profile{
		ID:            "receiver-1",
		Name:          "Ravi",
		PhoneNumber:   "+919876500003",
		Email:         "ravi@example.com",
		Members:       []models.Member{},
		SharedMembers: []models.SharedMemberRef{},
	}
}

func newTestUsecase(shareRepo contracts.SharedMemberRepository, profileRepo contracts.ProfileRepository, redisRepo *fakeRedisRepository, mailer *fakeMailerService, diagnostic *fakeDiagnosticCenterClient) contracts.SharingUsecase {
	internalConfig := &config.InternalConfig{
		App: config.App{PendingShareCacheExpInMinute: 5},
	}
	return NewSharingUsecase(shareRepo, profileRepo, redisRepo, mailer, diagnostic, internalConfig, zap.NewNop())
}

func TestShareMember(t *testing.T) {
	t.Run("creates pending share with normalized receiver contact", func(t *testing.T) {
		shareRepo := newFakeSharedMemberRepository()
		profileRepo := newFakeProfileRepository(sharerProfileFixture(), receiverProfileFixture())
		redisRepo := &fakeRedisRepository{}
		mailer := &fakeMailerService{}
		uc := newTestUsecase(shareRepo, profileRepo, redisRepo, mailer, &fakeDiagnosticCenterClient{})

		result, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "member-1",
			ReceiverContact: "91 98765-00003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.ShareStatusPending, result.Status)
		assert.Equal(t, "+919876500003", result.ReceiverContact)
		assert.NotEmpty(t, result.ID)

		stored, err := shareRepo.FindByID(context.Background(), result.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, constvars.ShareStatusPending, stored.Status)
	})

	t.Run("notifies receiver with a registered email", func(t *testing.T) {
		shareRepo := newFakeSharedMemberRepository()
		profileRepo := newFakeProfileRepository(sharerProfileFixture(), receiverProfileFixture())
		mailer := &fakeMailerService{}
		uc := newTestUsecase(shareRepo, profileRepo, &fakeRedisRepository{}, mailer, &fakeDiagnosticCenterClient{})

		_, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "member-1",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeDoctor,
		})

		require.NoError(t, err)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "ravi@example.com", mailer.sent[0].ReceiverEmail)
	})

	t.Run("rejects duplicate pending share", func(t *testing.T) {
		shareRepo := newFakeSharedMemberRepository()
		profileRepo := newFakeProfileRepository(sharerProfileFixture())
		uc := newTestUsecase(shareRepo, profileRepo, &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		request := &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "member-1",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		}

		_, err := uc.ShareMember(context.Background(), request)
		require.NoError(t, err)

		_, err = uc.ShareMember(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("rejects unknown member", func(t *testing.T) {
		uc := newTestUsecase(newFakeSharedMemberRepository(), newFakeProfileRepository(sharerProfileFixture()), &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		_, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "no-such-member",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("rejects unknown sharer profile", func(t *testing.T) {
		uc := newTestUsecase(newFakeSharedMemberRepository(), newFakeProfileRepository(), &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		_, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "ghost",
			MemberID:        "member-1",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		})

		require.Error(t, err)
	})
}

func TestListPendingShares(t *testing.T) {
	t.Run("enriches shares with sharer and member summaries", func(t *testing.T) {
		shareRepo := newFakeSharedMemberRepository()
		sharer := sharerProfileFixture()
		member := &models.Profile{ID: "member-1", Name: "Meera", PhoneNumber: "+919876500002", IsPediatric: true}
		profileRepo := newFakeProfileRepository(sharer, member)
		uc := newTestUsecase(shareRepo, profileRepo, &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		_, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "member-1",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		})
		require.NoError(t, err)

		pending, err := uc.ListPendingShares(context.Background(), "+919876500003")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.NotNil(t, pending[0].Sharer)
		assert.Equal(t, "Asha", pending[0].Sharer.Name)
		require.NotNil(t, pending[0].Member)
		assert.True(t, pending[0].Member.IsPediatric)
	})

	t.Run("tolerates unresolvable profiles", func(t *testing.T) {
		shareRepo := newFakeSharedMemberRepository()
		_, err := shareRepo.Insert(context.Background(), &models.SharedMember{
			MemberID:        "gone-member",
			SharerProfileID: "gone-sharer",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			Status:          constvars.ShareStatusPending,
			ShareType:       constvars.ShareTypeDoctor,
		})
		require.NoError(t, err)

		uc := newTestUsecase(shareRepo, newFakeProfileRepository(), &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		pending, err := uc.ListPendingShares(context.Background(), "+919876500003")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Nil(t, pending[0].Sharer)
		assert.Nil(t, pending[0].Member)
	})
}

func TestAcceptSharedMember(t *testing.T) {
	setup := func(t *testing.T) (contracts.SharingUsecase, *fakeSharedMemberRepository, *fakeProfileRepository, *fakeRedisRepository, string) {
		t.Helper()
		shareRepo := newFakeSharedMemberRepository()
		profileRepo := newFakeProfileRepository(sharerProfileFixture(), receiverProfileFixture())
		redisRepo := &fakeRedisRepository{}
		uc := newTestUsecase(shareRepo, profileRepo, redisRepo, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		created, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "member-1",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		})
		require.NoError(t, err)
		return uc, shareRepo, profileRepo, redisRepo, created.ID
	}

	t.Run("accept resolves the row and projects to both profiles", func(t *testing.T) {
		uc, shareRepo, profileRepo, redisRepo, shareID := setup(t)

		err := uc.AcceptSharedMember(context.Background(), &requests.AcceptSharedMember{
			ShareID:           shareID,
			ReceiverProfileID: "receiver-1",
		})
		require.NoError(t, err)

		stored, err := shareRepo.FindByID(context.Background(), shareID)
		require.NoError(t, err)
		assert.Equal(t, constvars.ShareStatusAccepted, stored.Status)

		receiver, err := profileRepo.FindByID(context.Background(), "receiver-1")
		require.NoError(t, err)
		require.Len(t, receiver.SharedMembers, 1)
		assert.Equal(t, "member-1", receiver.SharedMembers[0].MemberID)
		assert.Equal(t, "sharer-1", receiver.SharedMembers[0].SharedBy)
		assert.Equal(t, constvars.ShareStatusAccepted, receiver.SharedMembers[0].Status)

		sharer, err := profileRepo.FindByID(context.Background(), "sharer-1")
		require.NoError(t, err)
		require.Len(t, sharer.Members[0].SharedWith, 1)
		assert.Equal(t, "receiver-1", sharer.Members[0].SharedWith[0].ProfileID)

		assert.Contains(t, redisRepo.deletedKeys, fmt.Sprintf(constvars.RedisKeyPendingSharesFmt, "+919876500003"))
	})

	t.Run("accept is terminal", func(t *testing.T) {
		uc, _, _, _, shareID := setup(t)

		request := &requests.AcceptSharedMember{ShareID: shareID, ReceiverProfileID: "receiver-1"}
		require.NoError(t, uc.AcceptSharedMember(context.Background(), request))

		err := uc.AcceptSharedMember(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("unknown share returns not found", func(t *testing.T) {
		uc, _, _, _, _ := setup(t)

		err := uc.AcceptSharedMember(context.Background(), &requests.AcceptSharedMember{
			ShareID:           "000000000000000000000000",
			ReceiverProfileID: "receiver-1",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRejectSharedMember(t *testing.T) {
	t.Run("from share table deletes the row", func(t *testing.T) {
		shareRepo := newFakeSharedMemberRepository()
		profileRepo := newFakeProfileRepository(sharerProfileFixture())
		uc := newTestUsecase(shareRepo, profileRepo, &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		created, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "member-1",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		})
		require.NoError(t, err)

		err = uc.RejectSharedMember(context.Background(), &requests.RejectSharedMember{
			ShareID:                created.ID,
			FromSharedMembersTable: true,
		})
		require.NoError(t, err)

		stored, err := shareRepo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("embedded entry flips to rejected", func(t *testing.T) {
		receiver := receiverProfileFixture()
		receiver.SharedMembers = []models.SharedMemberRef{
			{MemberID: "member-1", SharedBy: "sharer-1", Status: constvars.ShareStatusPending},
		}
		profileRepo := newFakeProfileRepository(receiver)
		uc := newTestUsecase(newFakeSharedMemberRepository(), profileRepo, &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		err := uc.RejectSharedMember(context.Background(), &requests.RejectSharedMember{
			ReceiverProfileID:      "receiver-1",
			MemberID:               "member-1",
			FromSharedMembersTable: false,
		})
		require.NoError(t, err)

		updated, err := profileRepo.FindByID(context.Background(), "receiver-1")
		require.NoError(t, err)
		require.Len(t, updated.SharedMembers, 1)
		assert.Equal(t, constvars.ShareStatusRejected, updated.SharedMembers[0].Status)
	})

	t.Run("embedded entry missing returns not found", func(t *testing.T) {
		profileRepo := newFakeProfileRepository(receiverProfileFixture())
		uc := newTestUsecase(newFakeSharedMemberRepository(), profileRepo, &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		err := uc.RejectSharedMember(context.Background(), &requests.RejectSharedMember{
			ReceiverProfileID:      "receiver-1",
			MemberID:               "member-1",
			FromSharedMembersTable: false,
		})
		require.Error(t, err)
	})
}

func TestUnshareMember(t *testing.T) {
	t.Run("revokes across share row and both profiles", func(t *testing.T) {
		shareRepo := newFakeSharedMemberRepository()
		sharer := sharerProfileFixture()
		receiver := receiverProfileFixture()
		profileRepo := newFakeProfileRepository(sharer, receiver)
		uc := newTestUsecase(shareRepo, profileRepo, &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		created, err := uc.ShareMember(context.Background(), &requests.ShareMember{
			SharerProfileID: "sharer-1",
			MemberID:        "member-1",
			ReceiverContact: "+919876500003",
			ReceiverName:    "Ravi",
			ShareType:       constvars.ShareTypeAcquaintance,
		})
		require.NoError(t, err)
		require.NoError(t, uc.AcceptSharedMember(context.Background(), &requests.AcceptSharedMember{
			ShareID:           created.ID,
			ReceiverProfileID: "receiver-1",
		}))

		err = uc.UnshareMember(context.Background(), &requests.UnshareMember{
			SharerProfileID:      "sharer-1",
			MemberID:             "member-1",
			RecipientPhoneNumber: "+919876500003",
		})
		require.NoError(t, err)

		stored, err := shareRepo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)

		sharerAfter, err := profileRepo.FindByID(context.Background(), "sharer-1")
		require.NoError(t, err)
		assert.Empty(t, sharerAfter.Members[0].SharedWith)

		receiverAfter, err := profileRepo.FindByID(context.Background(), "receiver-1")
		require.NoError(t, err)
		assert.Empty(t, receiverAfter.SharedMembers)
	})

	t.Run("missing pieces do not block the rest", func(t *testing.T) {
		receiver := receiverProfileFixture()
		receiver.SharedMembers = []models.SharedMemberRef{
			{MemberID: "member-1", SharedBy: "gone-sharer", Status: constvars.ShareStatusAccepted},
		}
		profileRepo := newFakeProfileRepository(receiver)
		uc := newTestUsecase(newFakeSharedMemberRepository(), profileRepo, &fakeRedisRepository{}, &fakeMailerService{}, &fakeDiagnosticCenterClient{})

		err := uc.UnshareMember(context.Background(), &requests.UnshareMember{
			SharerProfileID:      "gone-sharer",
			MemberID:             "member-1",
			RecipientPhoneNumber: "+919876500003",
		})
		require.NoError(t, err)

		receiverAfter, err := profileRepo.FindByID(context.Background(), "receiver-1")
		require.NoError(t, err)
		assert.Empty(t, receiverAfter.SharedMembers)
	})
}

func TestSharedReportPassthrough(t *testing.T) {
	diagnostic := &fakeDiagnosticCenterClient{}
	uc := newTestUsecase(newFakeSharedMemberRepository(), newFakeProfileRepository(), &fakeRedisRepository{}, &fakeMailerService{}, diagnostic)

	err := uc.AcceptSharedReport(context.Background(), &requests.ReportShareAction{
		PhoneNumber: "91 98765-00003",
		ReportID:    "report-1",
	})
	require.NoError(t, err)
	require.Len(t, diagnostic.accepted, 1)
	assert.Equal(t, [2]string{"+919876500003", "report-1"}, diagnostic.accepted[0])

	err = uc.RejectSharedReport(context.Background(), &requests.ReportShareAction{
		PhoneNumber: "+919876500003",
		ReportID:    "report-2",
	})
	require.NoError(t, err)
	require.Len(t, diagnostic.rejected, 1)
	assert.Equal(t, [2]string{"+919876500003", "report-2"}, diagnostic.rejected[0])
}
