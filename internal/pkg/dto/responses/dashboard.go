package responses

import "carebook-service/internal/app/models"

type DashboardPatient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Dashboard struct {
	Patient              DashboardPatient      `json:"patient"`
	UpcomingAppointments []models.Appointment  `json:"upcomingAppointments"`
	UpcomingRefills      []models.Prescription `json:"upcomingRefills"`
}
