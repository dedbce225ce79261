package models

// Patient is the aggregate root owning its appointment and prescription
// collections. Appointments are mutated only through the booking usecase or
// the administrative paths; they are deactivated, never removed.
type Patient struct {
	ID            string         `json:"id" bson:"_id"`
	Name          string         `json:"name" bson:"name"`
	Email         string         `json:"email" bson:"email"`
	Password      string         `json:"-" bson:"password"`
	Appointments  []Appointment  `json:"appointments" bson:"appointments"`
	Prescriptions []Prescription `json:"prescriptions" bson:"prescriptions"`
}
