package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
)

type VaccineUsecase interface {
	GetVaccines(ctx context.Context) ([]models.Vaccine, error)
}

type VaccineRepository interface {
	FindAll(ctx context.Context) ([]models.Vaccine, error)
}
