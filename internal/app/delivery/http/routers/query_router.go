package routers

import (
	"famhealth-service/internal/app/services/core/queries"

	"github.com/go-chi/chi/v5"
)

func attachQueryRoutes(router chi.Router, queryController *queries.QueryController) {
	router.Post("/", queryController.CreateQuery)
}
