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
	"time"
)

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	VaccineRepository contracts.VaccineRepository
	InternalConfig    *config.InternalConfig
}

func NewProfileUsecase(
	profileMongoRepository contracts.ProfileRepository,
	vaccineMongoRepository contracts.VaccineRepository,
	internalConfig *config.InternalConfig,
) contracts.ProfileUsecase {
	return &profileUsecase{
		ProfileRepository: profileMongoRepository,
		VaccineRepository: vaccineMongoRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *profileUsecase) CreateProfile(ctx context.Context, request *requests.CreateProfile) (*models.Profile, error) {
	normalizedPhone := utils.NormalizePhoneNumber(request.PhoneNumber)
	err := utils.ValidatePhoneNumber(normalizedPhone)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existingProfile, err := uc.ProfileRepository.FindByPhoneNumber(ctx, normalizedPhone)
	if err != nil {
		return nil, err
	}
	if existingProfile != nil {
		return nil, exceptions.ErrPhoneNumberAlreadyRegistered(nil)
	}

	dob, err := utils.ParseDateOfBirth(request.DOB)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	profile := &models.Profile{
		Name:              request.Name,
		PhoneNumber:       normalizedPhone,
		Email:             request.Email,
		DOB:               dob,
		Gender:            request.Gender,
		BloodGroup:        request.BloodGroup,
		IsPediatric:       utils.IsPediatric(dob, time.Now()),
		Members:           []models.Member{},
		Reports:           []string{},
		SharedMembers:     []models.SharedMemberRef{},
		SubscriptionTier:  constvars.SubscriptionTierFree,
		VaccineCompletion: map[string]models.DoseCompletion{},
		GrowthChart:       []models.GrowthEntry{},
	}
	profile.SetCreatedNow()

	profileID, err := uc.ProfileRepository.CreateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = profileID

	return profile, nil
}

func (uc *profileUsecase) GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}
	return profile, nil
}

func (uc *profileUsecase) GetProfileByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Profile, error) {
	normalizedPhone := utils.NormalizePhoneNumber(phoneNumber)
	profile, err := uc.ProfileRepository.FindByPhoneNumber(ctx, normalizedPhone)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}
	return profile, nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, profileID string, request *requests.UpdateProfile) (*models.Profile, error) {
	existingProfile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if existingProfile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	if request.Name != "" {
		existingProfile.Name = request.Name
	}
	if request.Email != "" {
		existingProfile.Email = request.Email
	}
	if request.Gender != "" {
		existingProfile.Gender = request.Gender
	}
	if request.BloodGroup != "" {
		existingProfile.BloodGroup = request.BloodGroup
	}
	if request.DOB != "" {
		dob, err := utils.ParseDateOfBirth(request.DOB)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		existingProfile.DOB = dob
	}
	if request.GrowthChart != nil {
		entries := make([]models.GrowthEntry, 0, len(request.GrowthChart))
		for _, payload := range request.GrowthChart {
			date, err := utils.ParseDateOfBirth(payload.Date)
			if err != nil {
				return nil, exceptions.ErrCannotParseDate(err)
			}
			entries = append(entries, models.GrowthEntry{
				Date:     date,
				HeightCM: payload.HeightCM,
				WeightKG: payload.WeightKG,
			})
		}
		existingProfile.GrowthChart = entries
	}

	// Re-derived on every update so a corrected DOB flips the flag.
	existingProfile.IsPediatric = utils.IsPediatric(existingProfile.DOB, time.Now())
	existingProfile.SetUpdatedNow()

	err = uc.ProfileRepository.UpdateProfile(ctx, existingProfile)
	if err != nil {
		return nil, err
	}
	return existingProfile, nil
}

// DeleteProfile removes only the profile document. Shares and reports that
// reference the profile stay behind; readers tolerate dangling references.
func (uc *profileUsecase) DeleteProfile(ctx context.Context, profileID string) error {
	existingProfile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return err
	}
	if existingProfile == nil {
		return exceptions.ErrProfileNotExist(nil)
	}
	return uc.ProfileRepository.DeleteByID(ctx, profileID)
}

func (uc *profileUsecase) AddMember(ctx context.Context, request *requests.AddMember) (*models.Profile, error) {
	ownerProfile, err := uc.ProfileRepository.FindByID(ctx, request.ProfileID)
	if err != nil {
		return nil, err
	}
	if ownerProfile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	memberProfile, err := uc.ProfileRepository.FindByID(ctx, request.MemberID)
	if err != nil {
		return nil, err
	}
	if memberProfile == nil {
		return nil, exceptions.ErrMemberNotExist(nil)
	}

	if ownerProfile.FindMember(request.MemberID) != nil {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("member is already part of this profile"))
	}

	ownerProfile.Members = append(ownerProfile.Members, models.Member{
		MemberID:    request.MemberID,
		Relation:    request.Relation,
		PhoneNumber: utils.NormalizePhoneNumber(request.PhoneNumber),
		SharedWith:  []models.MemberShare{},
	})
	ownerProfile.SetUpdatedNow()

	err = uc.ProfileRepository.UpdateProfile(ctx, ownerProfile)
	if err != nil {
		return nil, err
	}
	return ownerProfile, nil
}

func (uc *profileUsecase) RemoveMember(ctx context.Context, request *requests.RemoveMember) (*models.Profile, error) {
	ownerProfile, err := uc.ProfileRepository.FindByID(ctx, request.ProfileID)
	if err != nil {
		return nil, err
	}
	if ownerProfile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	kept := make([]models.Member, 0, len(ownerProfile.Members))
	removed := false
	for _, member := range ownerProfile.Members {
		if member.MemberID == request.MemberID {
			removed = true
			continue
		}
		kept = append(kept, member)
	}
	if !removed {
		return nil, exceptions.ErrMemberNotExist(nil)
	}

	ownerProfile.Members = kept
	ownerProfile.SetUpdatedNow()

	err = uc.ProfileRepository.UpdateProfile(ctx, ownerProfile)
	if err != nil {
		return nil, err
	}
	return ownerProfile, nil
}

func (uc *profileUsecase) UpdateVaccination(ctx context.Context, request *requests.UpdateVaccination) (*models.Profile, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, request.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	vaccines, err := uc.VaccineRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if !doseExists(vaccines, request.DoseID) {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("unknown dose %s", request.DoseID))
	}

	completion := models.DoseCompletion{
		Remark:    request.Remark,
		Completed: request.Completed,
	}
	if request.DateAdministered != "" {
		administered, err := utils.ParseDateOfBirth(request.DateAdministered)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		completion.DateAdministered = &administered
	}

	if profile.VaccineCompletion == nil {
		profile.VaccineCompletion = map[string]models.DoseCompletion{}
	}
	profile.VaccineCompletion[request.DoseID] = completion
	profile.SetUpdatedNow()

	err = uc.ProfileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *profileUsecase) SubmitDoctorVerification(ctx context.Context, profileID, certificateURL string) (*models.Profile, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	profile.IsDoctor = true
	profile.DoctorApproved = false
	profile.CertificateURL = certificateURL
	profile.SetUpdatedNow()

	err = uc.ProfileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *profileUsecase) ApproveDoctor(ctx context.Context, profileID string) (*models.Profile, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}
	if !profile.IsDoctor {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("profile has no doctor verification submission"))
	}

	profile.DoctorApproved = true
	profile.SetUpdatedNow()

	err = uc.ProfileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func doseExists(vaccines []models.Vaccine, doseID string) bool {
	for _, vaccine := range vaccines {
		for _, dose := range vaccine.Doses {
			if dose.DoseID == doseID {
				return true
			}
		}
	}
	return false
}
