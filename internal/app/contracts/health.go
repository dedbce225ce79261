package contracts

import (
	"context"

	"carebook-service/internal/pkg/dto/responses"
)

type HealthUsecase interface {
	Check(ctx context.Context) *responses.Health
}
