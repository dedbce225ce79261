package routers

import (
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authenticate, middlewares.BookingRateLimit).Post("/book", bookingController.BookAppointment)
	router.Get("/availability/{provider}", bookingController.GetAvailability)
}
