package contracts

import (
	"context"

	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
}
