package routers

import (
	"famhealth-service/internal/app/services/core/vaccines"

	"github.com/go-chi/chi/v5"
)

func attachVaccineRoutes(router chi.Router, vaccineController *vaccines.VaccineController) {
	router.Get("/", vaccineController.GetVaccines)
}
