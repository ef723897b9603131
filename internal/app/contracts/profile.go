package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/dto/requests"
)

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, request *requests.CreateProfile) (*models.Profile, error)
	GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error)
	GetProfileByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, request *requests.UpdateProfile) (*models.Profile, error)
	DeleteProfile(ctx context.Context, profileID string) error
	AddMember(ctx context.Context, request *requests.AddMember) (*models.Profile, error)
	RemoveMember(ctx context.Context, request *requests.RemoveMember) (*models.Profile, error)
	UpdateVaccination(ctx context.Context, request *requests.UpdateVaccination) (*models.Profile, error)
	SubmitDoctorVerification(ctx context.Context, profileID, certificateURL string) (*models.Profile, error)
	ApproveDoctor(ctx context.Context, profileID string) (*models.Profile, error)
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) (profileID string, err error)
	FindByID(ctx context.Context, profileID string) (*models.Profile, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	DeleteByID(ctx context.Context, profileID string) error
}
