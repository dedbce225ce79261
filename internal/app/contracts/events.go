package contracts

import "context"

type BookingCreatedEvent struct {
	Event         string `json:"event"`
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	Provider      string `json:"provider"`
	Datetime      string `json:"datetime"`
	OccurredAt    string `json:"occurredAt"`
}

// BookingEventPublisher notifies downstream consumers about completed
// bookings. Publishing is best-effort: callers log failures and never fail
// the booking on a publish error.
type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, event *BookingCreatedEvent) error
}
