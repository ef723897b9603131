package queries

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QueryController struct {
	Log          *zap.Logger
	QueryUsecase contracts.QueryUsecase
}

func NewQueryController(logger *zap.Logger, queryUsecase contracts.QueryUsecase) *QueryController {
	return &QueryController{
		Log:          logger,
		QueryUsecase: queryUsecase,
	}
}

func (ctrl *QueryController) CreateQuery(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateQuery)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateQueryRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.QueryUsecase.CreateQuery(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateQuerySuccessMessage, result)
}
