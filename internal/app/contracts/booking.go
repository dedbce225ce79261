package contracts

import (
	"context"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
)

// BookingUsecase coordinates the concurrent-safe booking protocol: slot lock
// acquisition, conflict checks, persistence and guaranteed lock release.
type BookingUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error)
}

// AvailabilityUsecase enumerates free slots for a provider on a date. Pure
// read; safe to call concurrently.
type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, provider, date string) (*responses.Availability, error)
}
