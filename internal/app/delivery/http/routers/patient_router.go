package routers

import (
	"carebook-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.CreatePatient)
	router.Get("/{patientID}", patientController.FindByID)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Delete("/{patientID}", patientController.DeletePatient)

	router.Post("/{patientID}/appointments", patientController.CreateAppointment)
	router.Delete("/{patientID}/appointments/{appointmentID}", patientController.DeactivateAppointment)
	router.Post("/{patientID}/prescriptions", patientController.CreatePrescription)
}
