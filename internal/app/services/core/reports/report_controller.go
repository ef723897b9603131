package reports

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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

// UploadReport accepts a multipart form with a userId field and a report file.
func (ctrl *ReportController) UploadReport(w http.ResponseWriter, r *http.Request) {
	maxUploadSizeInBytes := ctrl.InternalConfig.App.ReportMaxUploadSizeInMB << 20
	err := r.ParseMultipartForm(maxUploadSizeInBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	userID := r.FormValue("userId")
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamUserID))
		return
	}

	file, header, err := r.FormFile("report")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadValidation(err))
		return
	}
	defer file.Close()

	if header.Size > maxUploadSizeInBytes {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadTooLarge(fmt.Errorf("report exceeds %d bytes", maxUploadSizeInBytes)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 40*time.Second)
	defer cancel()

	contentType := header.Header.Get(constvars.HeaderContentType)
	result, err := ctrl.ReportUsecase.UploadReport(ctx, userID, header.Filename, contentType, file, header.Size)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadReportSuccessMessage, result)
}

func (ctrl *ReportController) GetReportsByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(constvars.URLQueryParamUserID)
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamUserID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.GetReportsByUser(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, result)
}

func (ctrl *ReportController) GetReportsByMembers(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ReportsByMembers)
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

	result, err := ctrl.ReportUsecase.GetReportsByMembers(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, result)
}

func (ctrl *ReportController) GetReportsByIDs(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ReportsByIDs)
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

	result, err := ctrl.ReportUsecase.GetReportsByIDs(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, result)
}

func (ctrl *ReportController) GetReportsSharedWith(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get(constvars.URLQueryParamPhoneNumber)
	if phoneNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamPhoneNumber))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.GetReportsSharedWith(ctx, phoneNumber)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, result)
}

func (ctrl *ReportController) ShareReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ShareReport)
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

	result, err := ctrl.ReportUsecase.ShareReport(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShareReportSuccessMessage, result)
}
