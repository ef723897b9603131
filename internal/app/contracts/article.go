package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
)

type ArticleUsecase interface {
	GetArticles(ctx context.Context, page, pageSize int) ([]models.Article, int, error)
	GetArticleByID(ctx context.Context, articleID int64) (*models.Article, error)
}

type ArticleRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]models.Article, error)
	CountAll(ctx context.Context) (int, error)
	FindByID(ctx context.Context, articleID int64) (*models.Article, error)
}
