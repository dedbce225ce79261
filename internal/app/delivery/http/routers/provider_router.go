package routers

import (
	"carebook-service/internal/app/services/core/providers"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, providerController *providers.ProviderController) {
	router.Get("/", providerController.FindAll)
	router.Post("/", providerController.CreateProvider)
}
