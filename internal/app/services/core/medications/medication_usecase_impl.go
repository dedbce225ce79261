package medications

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type medicationUsecase struct {
	MedicationRepository contracts.MedicationRepository
	Log                  *zap.Logger
}

func NewMedicationUsecase(medicationRepository contracts.MedicationRepository, logger *zap.Logger) contracts.MedicationUsecase {
	return &medicationUsecase{
		MedicationRepository: medicationRepository,
		Log:                  logger,
	}
}

func (uc *medicationUsecase) FindAll(ctx context.Context) ([]models.Medication, error) {
	medications, err := uc.MedicationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if medications == nil {
		medications = []models.Medication{}
	}
	return medications, nil
}

func (uc *medicationUsecase) CreateMedication(ctx context.Context, request *requests.CreateMedication) (*models.Medication, error) {
	medication := &models.Medication{
		ID:       uuid.NewString(),
		Name:     request.Name,
		Dosages:  request.Dosages,
		IsActive: true,
	}
	if err := uc.MedicationRepository.CreateMedication(ctx, medication); err != nil {
		return nil, err
	}
	return medication, nil
}
