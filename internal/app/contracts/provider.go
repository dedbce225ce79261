package contracts

import (
	"context"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
)

type ProviderRepository interface {
	FindAll(ctx context.Context) ([]models.Provider, error)
	CreateProvider(ctx context.Context, provider *models.Provider) error
}

type ProviderUsecase interface {
	FindAll(ctx context.Context) ([]models.Provider, error)
	CreateProvider(ctx context.Context, request *requests.CreateProvider) (*models.Provider, error)
}
