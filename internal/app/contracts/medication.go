package contracts

import (
	"context"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
)

type MedicationRepository interface {
	FindAll(ctx context.Context) ([]models.Medication, error)
	CreateMedication(ctx context.Context, medication *models.Medication) error
}

type MedicationUsecase interface {
	FindAll(ctx context.Context) ([]models.Medication, error)
	CreateMedication(ctx context.Context, request *requests.CreateMedication) (*models.Medication, error)
}
