package subscriptions

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"fmt"

	"go.uber.org/zap"
)

const orderCurrency = "INR"

// Tier prices in paise. Annual plans.
var tierPrices = map[string]int64{
	constvars.SubscriptionTierPlus:    49900,
	constvars.SubscriptionTierPremium: 99900,
}

type subscriptionUsecase struct {
	OrderRepository   contracts.SubscriptionOrderRepository
	ProfileRepository contracts.ProfileRepository
	PaymentGateway    contracts.PaymentGatewayService
	Log               *zap.Logger
}

func NewSubscriptionUsecase(
	orderMongoRepository contracts.SubscriptionOrderRepository,
	profileMongoRepository contracts.ProfileRepository,
	paymentGateway contracts.PaymentGatewayService,
	logger *zap.Logger,
) contracts.SubscriptionUsecase {
	return &subscriptionUsecase{
		OrderRepository:   orderMongoRepository,
		ProfileRepository: profileMongoRepository,
		PaymentGateway:    paymentGateway,
		Log:               logger,
	}
}

func (uc *subscriptionUsecase) CreateOrder(ctx context.Context, request *requests.CreateSubscriptionOrder) (*responses.SubscriptionOrder, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, request.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	amountInPaise, ok := tierPrices[request.Tier]
	if !ok {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("unknown subscription tier %s", request.Tier))
	}

	order := &models.SubscriptionOrder{
		ProfileID:     request.ProfileID,
		Tier:          request.Tier,
		AmountInPaise: amountInPaise,
		Currency:      orderCurrency,
		Status:        constvars.SubscriptionOrderStatusCreated,
	}
	order.SetCreatedNow()

	orderID, err := uc.OrderRepository.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = orderID

	gatewayOrderID, err := uc.PaymentGateway.CreateOrder(ctx, amountInPaise, orderCurrency, orderID)
	if err != nil {
		order.Status = constvars.SubscriptionOrderStatusFailed
		order.SetUpdatedNow()
		updateErr := uc.OrderRepository.Update(ctx, order)
		if updateErr != nil {
			uc.Log.Warn("subscriptionUsecase.CreateOrder failed marking order as failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingOrderIDKey, orderID),
				zap.Error(updateErr),
			)
		}
		return nil, err
	}

	order.GatewayOrderID = gatewayOrderID
	order.SetUpdatedNow()
	err = uc.OrderRepository.Update(ctx, order)
	if err != nil {
		return nil, err
	}

	return &responses.SubscriptionOrder{
		OrderID:        orderID,
		GatewayOrderID: gatewayOrderID,
		GatewayKeyID:   uc.PaymentGateway.KeyID(),
		AmountInPaise:  amountInPaise,
		Currency:       orderCurrency,
		Tier:           request.Tier,
		Status:         order.Status,
	}, nil
}

func (uc *subscriptionUsecase) ConfirmOrder(ctx context.Context, request *requests.ConfirmSubscriptionOrder) (*responses.SubscriptionOrder, error) {
	order, err := uc.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrSubscriptionOrderNotExist(nil)
	}
	if order.Status == constvars.SubscriptionOrderStatusPaid {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("order is already paid"))
	}

	err = uc.PaymentGateway.VerifyPaymentSignature(order.GatewayOrderID, request.GatewayPaymentID, request.GatewaySignature)
	if err != nil {
		return nil, err
	}

	order.PaymentID = request.GatewayPaymentID
	order.Status = constvars.SubscriptionOrderStatusPaid
	order.SetUpdatedNow()

	err = uc.OrderRepository.Update(ctx, order)
	if err != nil {
		return nil, err
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, order.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	profile.SubscriptionTier = order.Tier
	profile.SetUpdatedNow()
	err = uc.ProfileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &responses.SubscriptionOrder{
		OrderID:        order.ID,
		GatewayOrderID: order.GatewayOrderID,
		GatewayKeyID:   uc.PaymentGateway.KeyID(),
		AmountInPaise:  order.AmountInPaise,
		Currency:       order.Currency,
		Tier:           order.Tier,
		Status:         order.Status,
	}, nil
}
