package articles

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type articleUsecase struct {
	ArticleRepository contracts.ArticleRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewArticleUsecase(
	articlePostgresRepository contracts.ArticleRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ArticleUsecase {
	return &articleUsecase{
		ArticleRepository: articlePostgresRepository,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

type cachedArticleList struct {
	Articles []models.Article `json:"articles"`
	Total    int              `json:"total"`
}

func (uc *articleUsecase) GetArticles(ctx context.Context, page, pageSize int) ([]models.Article, int, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyArticleListFmt, page, pageSize)
	expiration := time.Duration(uc.InternalConfig.App.ArticleCacheExpirationInMinute) * time.Minute

	cached := cachedArticleList{}
	found, err := uc.RedisRepository.Get(ctx, cacheKey, &cached)
	if err != nil {
		uc.Log.Warn("articleUsecase.GetArticles cache read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	if found {
		return cached.Articles, cached.Total, nil
	}

	offset := (page - 1) * pageSize
	articles, err := uc.ArticleRepository.FindAll(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.ArticleRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	err = uc.RedisRepository.Set(ctx, cacheKey, cachedArticleList{Articles: articles, Total: total}, expiration)
	if err != nil {
		uc.Log.Warn("articleUsecase.GetArticles cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}

	return articles, total, nil
}

func (uc *articleUsecase) GetArticleByID(ctx context.Context, articleID int64) (*models.Article, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyArticleFmt, articleID)
	expiration := time.Duration(uc.InternalConfig.App.ArticleCacheExpirationInMinute) * time.Minute

	cached := models.Article{}
	found, err := uc.RedisRepository.Get(ctx, cacheKey, &cached)
	if err != nil {
		uc.Log.Warn("articleUsecase.GetArticleByID cache read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	if found {
		return &cached, nil
	}

	article, err := uc.ArticleRepository.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("article not found"))
	}

	err = uc.RedisRepository.Set(ctx, cacheKey, article, expiration)
	if err != nil {
		uc.Log.Warn("articleUsecase.GetArticleByID cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}

	return article, nil
}
