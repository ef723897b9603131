package references

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ReferenceController struct {
	Log              *zap.Logger
	ReferenceUsecase contracts.ReferenceUsecase
}

func NewReferenceController(logger *zap.Logger, referenceUsecase contracts.ReferenceUsecase) *ReferenceController {
	return &ReferenceController{
		Log:              logger,
		ReferenceUsecase: referenceUsecase,
	}
}

func (ctrl *ReferenceController) GetReportTypes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReferenceUsecase.GetReportTypes(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReferenceDataSuccessMessage, result)
}

func (ctrl *ReferenceController) GetKeywords(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReferenceUsecase.GetKeywords(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReferenceDataSuccessMessage, result)
}

func (ctrl *ReferenceController) GetHealthTopics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReferenceUsecase.GetHealthTopics(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReferenceDataSuccessMessage, result)
}
