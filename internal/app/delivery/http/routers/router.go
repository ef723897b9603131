package routers

import (
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/delivery/http/middlewares"
	"famhealth-service/internal/app/services/core/articles"
	"famhealth-service/internal/app/services/core/profiles"
	"famhealth-service/internal/app/services/core/queries"
	"famhealth-service/internal/app/services/core/references"
	"famhealth-service/internal/app/services/core/reports"
	"famhealth-service/internal/app/services/core/sharing"
	"famhealth-service/internal/app/services/core/subscriptions"
	"famhealth-service/internal/app/services/core/vaccines"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	profileController *profiles.ProfileController,
	sharingController *sharing.SharingController,
	reportController *reports.ReportController,
	vaccineController *vaccines.VaccineController,
	articleController *articles.ArticleController,
	subscriptionController *subscriptions.SubscriptionController,
	queryController *queries.QueryController,
	referenceController *references.ReferenceController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Api-Key", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/profile", func(r chi.Router) {
			attachProfileRoutes(r, middlewares, profileController, sharingController)
		})

		r.Route("/reports", func(r chi.Router) {
			attachReportRoutes(r, middlewares, reportController, sharingController)
		})

		r.Route("/vaccines", func(r chi.Router) {
			attachVaccineRoutes(r, vaccineController)
		})

		r.Route("/articles", func(r chi.Router) {
			attachArticleRoutes(r, articleController)
		})

		r.Route("/subscription", func(r chi.Router) {
			attachSubscriptionRoutes(r, middlewares, subscriptionController)
		})

		r.Route("/query", func(r chi.Router) {
			attachQueryRoutes(r, queryController)
		})

		r.Route("/reference", func(r chi.Router) {
			attachReferenceRoutes(r, referenceController)
		})
	})
}
