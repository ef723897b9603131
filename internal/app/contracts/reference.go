package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
)

type ReferenceUsecase interface {
	GetReportTypes(ctx context.Context) ([]models.ReportType, error)
	GetKeywords(ctx context.Context) ([]models.Keyword, error)
	GetHealthTopics(ctx context.Context) ([]models.HealthTopic, error)
}

type ReferenceRepository interface {
	FindReportTypes(ctx context.Context) ([]models.ReportType, error)
	FindKeywords(ctx context.Context) ([]models.Keyword, error)
	FindHealthTopics(ctx context.Context) ([]models.HealthTopic, error)
}
