package providers

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type providerUsecase struct {
	ProviderRepository contracts.ProviderRepository
	Log                *zap.Logger
}

func NewProviderUsecase(providerRepository contracts.ProviderRepository, logger *zap.Logger) contracts.ProviderUsecase {
	return &providerUsecase{
		ProviderRepository: providerRepository,
		Log:                logger,
	}
}

func (uc *providerUsecase) FindAll(ctx context.Context) ([]models.Provider, error) {
	providers, err := uc.ProviderRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	return providers, nil
}

func (uc *providerUsecase) CreateProvider(ctx context.Context, request *requests.CreateProvider) (*models.Provider, error) {
	provider := &models.Provider{
		ID:        uuid.NewString(),
		Name:      request.Name,
		Specialty: request.Specialty,
		IsActive:  true,
	}
	if err := uc.ProviderRepository.CreateProvider(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}
