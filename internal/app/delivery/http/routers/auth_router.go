package routers

import (
	"carebook-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
}
