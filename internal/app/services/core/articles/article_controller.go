package articles

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultArticlePage     = 1
	defaultArticlePageSize = 10
	maxArticlePageSize     = 50
)

type ArticleController struct {
	Log            *zap.Logger
	ArticleUsecase contracts.ArticleUsecase
}

func NewArticleController(logger *zap.Logger, articleUsecase contracts.ArticleUsecase) *ArticleController {
	return &ArticleController{
		Log:            logger,
		ArticleUsecase: articleUsecase,
	}
}

func (ctrl *ArticleController) GetArticles(w http.ResponseWriter, r *http.Request) {
	page := parsePositiveInt(r.URL.Query().Get(constvars.URLQueryParamPage), defaultArticlePage)
	pageSize := parsePositiveInt(r.URL.Query().Get(constvars.URLQueryParamPageSize), defaultArticlePageSize)
	if pageSize > maxArticlePageSize {
		pageSize = maxArticlePageSize
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	articles, total, err := ctrl.ArticleUsecase.GetArticles(ctx, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetArticlesSuccessMessage, pagination, articles)
}

func (ctrl *ArticleController) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	articleIDParam := chi.URLParam(r, constvars.URLParamArticleID)
	articleID, err := strconv.ParseInt(articleIDParam, 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamArticleID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ArticleUsecase.GetArticleByID(ctx, articleID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArticleSuccessMessage, result)
}

func parsePositiveInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
