package profiles

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepository struct {
	profiles map[string]*models.Profile
	nextID   int
}

func newFakeProfileRepository(profiles ...*models.Profile) *fakeProfileRepository {
	repo := &fakeProfileRepository{profiles: map[string]*models.Profile{}}
	for _, profile := range profiles {
		repo.profiles[profile.ID] = profile
	}
	return repo
}

func (f *fakeProfileRepository) CreateProfile(_ context.Context, profile *models.Profile) (string, error) {
	f.nextID++
	id := fmt.Sprintf("profile-%d", f.nextID)
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

type fakeVaccineRepository struct {
	vaccines []models.Vaccine
}

func (f *fakeVaccineRepository) FindAll(_ context.Context) ([]models.Vaccine, error) {
	return f.vaccines, nil
}

func newTestUsecase(profileRepo contracts.ProfileRepository, vaccineRepo contracts.VaccineRepository) contracts.ProfileUsecase {
	return NewProfileUsecase(profileRepo, vaccineRepo, &config.InternalConfig{})
}

func TestCreateProfile(t *testing.T) {
	t.Run("adult profile with normalized phone", func(t *testing.T) {
		repo := newFakeProfileRepository()
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		profile, err := uc.CreateProfile(context.Background(), &requests.CreateProfile{
			Name:        "Asha",
			PhoneNumber: "91 98765-43210",
			DOB:         "1990-04-12",
			Gender:      "female",
			BloodGroup:  "O+",
		})

		require.NoError(t, err)
		assert.Equal(t, "+919876543210", profile.PhoneNumber)
		assert.False(t, profile.IsPediatric)
		assert.Equal(t, constvars.SubscriptionTierFree, profile.SubscriptionTier)
		assert.NotEmpty(t, profile.ID)
		assert.NotNil(t, profile.Members)
		assert.NotNil(t, profile.VaccineCompletion)
	})

	t.Run("infant is flagged pediatric", func(t *testing.T) {
		repo := newFakeProfileRepository()
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		dob := time.Now().AddDate(0, -6, 0).Format(utils.DateOfBirthLayout)
		profile, err := uc.CreateProfile(context.Background(), &requests.CreateProfile{
			Name:        "Meera",
			PhoneNumber: "+919876543211",
			DOB:         dob,
		})

		require.NoError(t, err)
		assert.True(t, profile.IsPediatric)
	})

	t.Run("rejects duplicate phone number", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "existing", PhoneNumber: "+919876543210"})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		_, err := uc.CreateProfile(context.Background(), &requests.CreateProfile{
			Name:        "Asha",
			PhoneNumber: "919876543210",
			DOB:         "1990-04-12",
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("rejects invalid phone number", func(t *testing.T) {
		uc := newTestUsecase(newFakeProfileRepository(), &fakeVaccineRepository{})

		_, err := uc.CreateProfile(context.Background(), &requests.CreateProfile{
			Name:        "Asha",
			PhoneNumber: "+0123",
			DOB:         "1990-04-12",
		})

		require.Error(t, err)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("corrected dob re-derives pediatric flag", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{
			ID:          "profile-1",
			Name:        "Meera",
			DOB:         time.Now().AddDate(-30, 0, 0),
			IsPediatric: false,
		})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		dob := time.Now().AddDate(-1, 0, 0).Format(utils.DateOfBirthLayout)
		updated, err := uc.UpdateProfile(context.Background(), "profile-1", &requests.UpdateProfile{DOB: dob})

		require.NoError(t, err)
		assert.True(t, updated.IsPediatric)
	})

	t.Run("zero fields leave profile unchanged", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{
			ID:         "profile-1",
			Name:       "Asha",
			Email:      "asha@example.com",
			DOB:        time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
			BloodGroup: "O+",
		})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		updated, err := uc.UpdateProfile(context.Background(), "profile-1", &requests.UpdateProfile{Name: "Asha R"})

		require.NoError(t, err)
		assert.Equal(t, "Asha R", updated.Name)
		assert.Equal(t, "asha@example.com", updated.Email)
		assert.Equal(t, "O+", updated.BloodGroup)
	})

	t.Run("growth chart replaces the stored list", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{
			ID:  "profile-1",
			DOB: time.Now().AddDate(-1, 0, 0),
			GrowthChart: []models.GrowthEntry{
				{Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), HeightCM: 70},
			},
		})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		updated, err := uc.UpdateProfile(context.Background(), "profile-1", &requests.UpdateProfile{
			GrowthChart: []requests.GrowthEntryPayload{
				{Date: "2026-06-01", HeightCM: 74, WeightKG: 9.1},
				{Date: "2026-08-01", HeightCM: 76, WeightKG: 9.6},
			},
		})

		require.NoError(t, err)
		require.Len(t, updated.GrowthChart, 2)
		assert.Equal(t, 74.0, updated.GrowthChart[0].HeightCM)
	})

	t.Run("unknown profile returns not found", func(t *testing.T) {
		uc := newTestUsecase(newFakeProfileRepository(), &fakeVaccineRepository{})

		_, err := uc.UpdateProfile(context.Background(), "ghost", &requests.UpdateProfile{Name: "Nobody"})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAddMember(t *testing.T) {
	t.Run("appends member referencing an existing profile", func(t *testing.T) {
		repo := newFakeProfileRepository(
			&models.Profile{ID: "owner-1", Members: []models.Member{}},
			&models.Profile{ID: "child-1"},
		)
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		updated, err := uc.AddMember(context.Background(), &requests.AddMember{
			ProfileID:   "owner-1",
			MemberID:    "child-1",
			Relation:    "daughter",
			PhoneNumber: "91 98765-43212",
		})

		require.NoError(t, err)
		require.Len(t, updated.Members, 1)
		assert.Equal(t, "child-1", updated.Members[0].MemberID)
		assert.Equal(t, "+919876543212", updated.Members[0].PhoneNumber)
		assert.NotNil(t, updated.Members[0].SharedWith)
	})

	t.Run("rejects duplicate member", func(t *testing.T) {
		repo := newFakeProfileRepository(
			&models.Profile{ID: "owner-1", Members: []models.Member{{MemberID: "child-1"}}},
			&models.Profile{ID: "child-1"},
		)
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		_, err := uc.AddMember(context.Background(), &requests.AddMember{
			ProfileID:   "owner-1",
			MemberID:    "child-1",
			Relation:    "daughter",
			PhoneNumber: "+919876543212",
		})

		require.Error(t, err)
	})

	t.Run("rejects member without a profile", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "owner-1"})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		_, err := uc.AddMember(context.Background(), &requests.AddMember{
			ProfileID:   "owner-1",
			MemberID:    "ghost",
			Relation:    "son",
			PhoneNumber: "+919876543212",
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRemoveMember(t *testing.T) {
	t.Run("removes existing member", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{
			ID: "owner-1",
			Members: []models.Member{
				{MemberID: "child-1"},
				{MemberID: "child-2"},
			},
		})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		updated, err := uc.RemoveMember(context.Background(), &requests.RemoveMember{
			ProfileID: "owner-1",
			MemberID:  "child-1",
		})

		require.NoError(t, err)
		require.Len(t, updated.Members, 1)
		assert.Equal(t, "child-2", updated.Members[0].MemberID)
	})

	t.Run("missing member returns not found", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "owner-1", Members: []models.Member{}})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		_, err := uc.RemoveMember(context.Background(), &requests.RemoveMember{
			ProfileID: "owner-1",
			MemberID:  "ghost",
		})

		require.Error(t, err)
	})
}

func TestUpdateVaccination(t *testing.T) {
	vaccineRepo := &fakeVaccineRepository{
		vaccines: []models.Vaccine{
			{
				Name: "DTP",
				Doses: []models.Dose{
					{DoseID: "dtp-1", Label: "DTP dose 1", Sequence: 1},
					{DoseID: "dtp-2", Label: "DTP dose 2", Sequence: 2},
				},
			},
		},
	}

	t.Run("records completion for a known dose", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "profile-1"})
		uc := newTestUsecase(repo, vaccineRepo)

		updated, err := uc.UpdateVaccination(context.Background(), &requests.UpdateVaccination{
			ProfileID:        "profile-1",
			DoseID:           "dtp-1",
			DateAdministered: "2026-08-20",
			Remark:           "no reaction",
			Completed:        true,
		})

		require.NoError(t, err)
		completion, ok := updated.VaccineCompletion["dtp-1"]
		require.True(t, ok)
		assert.True(t, completion.Completed)
		require.NotNil(t, completion.DateAdministered)
		assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), *completion.DateAdministered)
	})

	t.Run("rejects unknown dose", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "profile-1"})
		uc := newTestUsecase(repo, vaccineRepo)

		_, err := uc.UpdateVaccination(context.Background(), &requests.UpdateVaccination{
			ProfileID: "profile-1",
			DoseID:    "polio-99",
			Completed: true,
		})

		require.Error(t, err)
	})
}

func TestDoctorVerification(t *testing.T) {
	t.Run("submission stores certificate pending approval", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "profile-1"})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		updated, err := uc.SubmitDoctorVerification(context.Background(), "profile-1", "https://storage.example.com/cert.pdf")

		require.NoError(t, err)
		assert.True(t, updated.IsDoctor)
		assert.False(t, updated.DoctorApproved)
		assert.Equal(t, "https://storage.example.com/cert.pdf", updated.CertificateURL)
	})

	t.Run("approval requires a submission", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "profile-1"})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		_, err := uc.ApproveDoctor(context.Background(), "profile-1")
		require.Error(t, err)
	})

	t.Run("approval flips the flag", func(t *testing.T) {
		repo := newFakeProfileRepository(&models.Profile{ID: "profile-1", IsDoctor: true})
		uc := newTestUsecase(repo, &fakeVaccineRepository{})

		updated, err := uc.ApproveDoctor(context.Background(), "profile-1")

		require.NoError(t, err)
		assert.True(t, updated.DoctorApproved)
	})
}
