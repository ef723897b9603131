package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
)

type SubscriptionUsecase interface {
	CreateOrder(ctx context.Context, request *requests.CreateSubscriptionOrder) (*responses.SubscriptionOrder, error)
	ConfirmOrder(ctx context.Context, request *requests.ConfirmSubscriptionOrder) (*responses.SubscriptionOrder, error)
}

type SubscriptionOrderRepository interface {
	Insert(ctx context.Context, order *models.SubscriptionOrder) (orderID string, err error)
	FindByID(ctx context.Context, orderID string) (*models.SubscriptionOrder, error)
	Update(ctx context.Context, order *models.SubscriptionOrder) error
}
