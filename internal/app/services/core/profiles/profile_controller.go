package profiles

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
}

func NewProfileController(
	logger *zap.Logger,
	profileUsecase contracts.ProfileUsecase,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.CreateProfile(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProfileSuccessMessage, result)
}

func (ctrl *ProfileController) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, constvars.URLParamProfileID)
	if profileID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamProfileID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.GetProfileByID(ctx, profileID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, result)
}

func (ctrl *ProfileController) GetProfileByPhoneNumber(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get(constvars.URLQueryParamPhoneNumber)
	if phoneNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamPhoneNumber))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.GetProfileByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, result)
}

func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, constvars.URLParamProfileID)
	if profileID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamProfileID))
		return
	}

	request := new(requests.UpdateProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.UpdateProfile(ctx, profileID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, result)
}

func (ctrl *ProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, constvars.URLParamProfileID)
	if profileID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamProfileID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.ProfileUsecase.DeleteProfile(ctx, profileID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteProfileSuccessMessage, nil)
}

func (ctrl *ProfileController) AddMember(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddMember)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeAddMemberRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.AddMember(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddMemberSuccessMessage, result)
}

func (ctrl *ProfileController) RemoveMember(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RemoveMember)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.RemoveMember(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveMemberSuccessMessage, result)
}

func (ctrl *ProfileController) UpdateVaccination(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateVaccination)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.UpdateVaccination(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateVaccinationSuccessMessage, result)
}

// SubmitDoctorVerification accepts a multipart form with a profileId field and
// a certificate file, stores the certificate, and marks the profile as an
// unapproved doctor until an admin approves it.
func (ctrl *ProfileController) SubmitDoctorVerification(w http.ResponseWriter, r *http.Request) {
	maxUploadSizeInBytes := ctrl.InternalConfig.App.CertificateMaxUploadSizeInMB << 20
	err := r.ParseMultipartForm(maxUploadSizeInBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	profileID := r.FormValue("profileId")
	if profileID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "profileId"))
		return
	}

	file, header, err := r.FormFile("certificate")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadValidation(err))
		return
	}
	defer file.Close()

	if header.Size > maxUploadSizeInBytes {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadTooLarge(fmt.Errorf("certificate exceeds %d bytes", maxUploadSizeInBytes)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	objectName := fmt.Sprintf("%s/%s-%s", profileID, uuid.NewString(), header.Filename)
	contentType := header.Header.Get(constvars.HeaderContentType)
	certificateURL, err := ctrl.MinioStorage.UploadObject(ctx, ctrl.InternalConfig.Minio.CertificateBucketName, objectName, contentType, file, header.Size)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.ProfileUsecase.SubmitDoctorVerification(ctx, profileID, certificateURL)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorVerificationSuccessMessage, result)
}

func (ctrl *ProfileController) ApproveDoctor(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, constvars.URLParamProfileID)
	if profileID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamProfileID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.ApproveDoctor(ctx, profileID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ApproveDoctorSuccessMessage, result)
}
