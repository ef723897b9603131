package routers

import (
	"famhealth-service/internal/app/delivery/http/middlewares"
	"famhealth-service/internal/app/services/core/subscriptions"

	"github.com/go-chi/chi/v5"
)

func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *subscriptions.SubscriptionController) {
	router.With(middlewares.Authentication).Post("/order", subscriptionController.CreateOrder)
	router.With(middlewares.Authentication).Post("/confirm", subscriptionController.ConfirmOrder)
}
