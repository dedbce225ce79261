package contracts

import (
	"context"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
)

// PatientRepository is the patient record store contract: get-by-id, get-all
// and partial field updates. FindByID and FindByEmail return (nil, nil) when
// no record matches.
type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) error
	UpdateFields(ctx context.Context, patientID string, fields map[string]interface{}) error
	DeleteByID(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	GetDashboard(ctx context.Context, patientID string) (*responses.Dashboard, error)
	FindAllWithSummary(ctx context.Context) ([]responses.PatientSummary, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	CreateAppointment(ctx context.Context, patientID string, request *requests.CreateAppointment) (*models.Appointment, error)
	DeactivateAppointment(ctx context.Context, patientID, appointmentID string) error
	CreatePrescription(ctx context.Context, patientID string, request *requests.CreatePrescription) (*models.Prescription, error)
}
