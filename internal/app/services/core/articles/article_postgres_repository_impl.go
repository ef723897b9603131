package articles

import (
	"context"
	"database/sql"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type articlePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	articlePostgresRepositoryInstance contracts.ArticleRepository
	onceArticlePostgresRepository     sync.Once
)

func NewArticlePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ArticleRepository {
	onceArticlePostgresRepository.Do(func() {
		instance := &articlePostgresRepository{
			DB:  db,
			Log: logger,
		}
		articlePostgresRepositoryInstance = instance
	})
	return articlePostgresRepositoryInstance
}

func (r *articlePostgresRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Article, error) {
	query := queries.GetAllArticles
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var model models.Article
		if err := rows.Scan(&model.ID, &model.Title, &model.Slug, &model.Summary, &model.Content, &model.Author, &model.ImageURL, &model.PublishedAt); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		articles = append(articles, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return articles, nil
}

func (r *articlePostgresRepository) CountAll(ctx context.Context) (int, error) {
	query := queries.CountAllArticles
	var total int
	err := r.DB.QueryRowContext(ctx, query).Scan(&total)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (r *articlePostgresRepository) FindByID(ctx context.Context, articleID int64) (*models.Article, error) {
	query := queries.GetArticleByID
	var article models.Article
	err := r.DB.QueryRowContext(ctx, query, articleID).Scan(&article.ID, &article.Title, &article.Slug, &article.Summary, &article.Content, &article.Author, &article.ImageURL, &article.PublishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &article, nil
}
