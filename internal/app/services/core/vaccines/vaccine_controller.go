package vaccines

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type VaccineController struct {
	Log            *zap.Logger
	VaccineUsecase contracts.VaccineUsecase
}

func NewVaccineController(logger *zap.Logger, vaccineUsecase contracts.VaccineUsecase) *VaccineController {
	return &VaccineController{
		Log:            logger,
		VaccineUsecase: vaccineUsecase,
	}
}

func (ctrl *VaccineController) GetVaccines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VaccineUsecase.GetVaccines(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVaccinesSuccessMessage, result)
}
