package subscriptions

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

type SubscriptionController struct {
	Log                 *zap.Logger
	SubscriptionUsecase contracts.SubscriptionUsecase
}

func NewSubscriptionController(logger *zap.Logger, subscriptionUsecase contracts.SubscriptionUsecase) *SubscriptionController {
	return &SubscriptionController{
		Log:                 logger,
		SubscriptionUsecase: subscriptionUsecase,
	}
}

func (ctrl *SubscriptionController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSubscriptionOrder)
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

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.CreateOrder(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOrderSuccessMessage, result)
}

func (ctrl *SubscriptionController) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ConfirmSubscriptionOrder)
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

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.ConfirmOrder(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfirmOrderSuccessMessage, result)
}
