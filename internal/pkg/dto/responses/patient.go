package responses

import "carebook-service/internal/app/models"

// Patient is the client view of a patient record, password elided.
type Patient struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Appointments  []models.Appointment  `json:"appointments"`
	Prescriptions []models.Prescription `json:"prescriptions"`
}

// PatientSummary augments the patient view with booking roll-ups for the
// administrative list endpoint.
type PatientSummary struct {
	Patient
	TotalAppointments  int                 `json:"totalAppointments"`
	TotalPrescriptions int                 `json:"totalPrescriptions"`
	NextAppointment    *models.Appointment `json:"nextAppointment"`
}

func NewPatientResponse(patient *models.Patient) Patient {
	appointments := patient.Appointments
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	prescriptions := patient.Prescriptions
	if prescriptions == nil {
		prescriptions = []models.Prescription{}
	}
	return Patient{
		ID:            patient.ID,
		Name:          patient.Name,
		Email:         patient.Email,
		Appointments:  appointments,
		Prescriptions: prescriptions,
	}
}
