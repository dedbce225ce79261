package routers

import (
	"carebook-service/internal/app/services/core/medications"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, medicationController *medications.MedicationController) {
	router.Get("/", medicationController.FindAll)
	router.Post("/", medicationController.CreateMedication)
}
