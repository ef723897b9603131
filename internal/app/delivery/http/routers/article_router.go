package routers

import (
	"famhealth-service/internal/app/services/core/articles"

	"github.com/go-chi/chi/v5"
)

func attachArticleRoutes(router chi.Router, articleController *articles.ArticleController) {
	router.Get("/", articleController.GetArticles)
	router.Get("/{article_id}", articleController.GetArticleByID)
}
