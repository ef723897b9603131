package routers

import (
	"famhealth-service/internal/app/services/core/references"

	"github.com/go-chi/chi/v5"
)

func attachReferenceRoutes(router chi.Router, referenceController *references.ReferenceController) {
	router.Get("/reportTypes", referenceController.GetReportTypes)
	router.Get("/keywords", referenceController.GetKeywords)
	router.Get("/healthTopics", referenceController.GetHealthTopics)
}
