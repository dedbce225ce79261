package requests

type CreatePrescription struct {
	Medication     string `json:"medication" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Instructions   string `json:"instructions"`
	StartDate      string `json:"startDate" validate:"required"`
	EndDate        string `json:"endDate" validate:"required"`
	RefillSchedule string `json:"refill_schedule,omitempty"`
}
