package routers

import (
	"fmt"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/auth"
	"carebook-service/internal/app/services/core/bookings"
	"carebook-service/internal/app/services/core/health"
	"carebook-service/internal/app/services/core/medications"
	"carebook-service/internal/app/services/core/patients"
	"carebook-service/internal/app/services/core/providers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	bookingController *bookings.BookingController,
	providerController *providers.ProviderController,
	medicationController *medications.MedicationController,
	healthController *health.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.Check)

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, authController)
			})

			r.With(middlewares.Authenticate).Get("/patients/dashboard", patientController.GetDashboard)

			r.Route("/appointments", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Get("/providers", providerController.FindAll)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/patients", func(r chi.Router) {
					attachPatientRoutes(r, patientController)
				})
				r.Route("/providers", func(r chi.Router) {
					attachProviderRoutes(r, providerController)
				})
				r.Route("/medications", func(r chi.Router) {
					attachMedicationRoutes(r, medicationController)
				})
			})
		})
	})
}
