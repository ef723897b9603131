package vaccines

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
)

type vaccineUsecase struct {
	VaccineRepository contracts.VaccineRepository
}

func NewVaccineUsecase(vaccineMongoRepository contracts.VaccineRepository) contracts.VaccineUsecase {
	return &vaccineUsecase{
		VaccineRepository: vaccineMongoRepository,
	}
}

func (uc *vaccineUsecase) GetVaccines(ctx context.Context) ([]models.Vaccine, error) {
	return uc.VaccineRepository.FindAll(ctx)
}
