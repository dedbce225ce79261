package models

type Prescription struct {
	ID             string `json:"id" bson:"id"`
	Medication     string `json:"medication" bson:"medication"`
	Dosage         string `json:"dosage" bson:"dosage"`
	Instructions   string `json:"instructions" bson:"instructions"`
	StartDate      string `json:"startDate" bson:"startDate"`
	EndDate        string `json:"endDate" bson:"endDate"`
	RefillSchedule string `json:"refill_schedule,omitempty" bson:"refillSchedule,omitempty"`
	IsActive       bool   `json:"isActive" bson:"isActive"`
}
