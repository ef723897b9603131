package references

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
)

type referenceUsecase struct {
	ReferenceRepository contracts.ReferenceRepository
}

func NewReferenceUsecase(referenceMongoRepository contracts.ReferenceRepository) contracts.ReferenceUsecase {
	return &referenceUsecase{
		ReferenceRepository: referenceMongoRepository,
	}
}

func (uc *referenceUsecase) GetReportTypes(ctx context.Context) ([]models.ReportType, error) {
	return uc.ReferenceRepository.FindReportTypes(ctx)
}

func (uc *referenceUsecase) GetKeywords(ctx context.Context) ([]models.Keyword, error) {
	return uc.ReferenceRepository.FindKeywords(ctx)
}

func (uc *referenceUsecase) GetHealthTopics(ctx context.Context) ([]models.HealthTopic, error) {
	return uc.ReferenceRepository.FindHealthTopics(ctx)
}
