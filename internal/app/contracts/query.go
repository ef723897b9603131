package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/dto/requests"
)

type QueryUsecase interface {
	CreateQuery(ctx context.Context, request *requests.CreateQuery) (*models.Query, error)
}

type QueryRepository interface {
	Insert(ctx context.Context, query *models.Query) (queryID string, err error)
}
