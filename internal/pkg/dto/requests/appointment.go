package requests

// CreateAppointment is the administrative create path. It bypasses the slot
// lock protocol; concurrent-safe booking goes through BookAppointment.
type CreateAppointment struct {
	Provider string `json:"provider" validate:"required"`
	Datetime string `json:"datetime" validate:"required,appointment_datetime"`
	Repeat   string `json:"repeat,omitempty" validate:"omitempty,oneof=none weekly monthly"`
}

type BookAppointment struct {
	UserID   string `json:"userId" validate:"required"`
	Provider string `json:"provider" validate:"required"`
	Datetime string `json:"datetime" validate:"required,appointment_datetime"`
	Repeat   string `json:"repeat,omitempty" validate:"omitempty,oneof=none weekly monthly"`
}
