package auth

import (
	"context"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	PatientRepository contracts.PatientRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	patientRepository contracts.PatientRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		PatientRepository: patientRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	// Identical failure for unknown email and wrong password so the endpoint
	// does not leak which emails are registered.
	if patient == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, patient.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := utils.GenerateJWT(patient.ID, patient.Email, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login patient logged in",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	return &responses.Login{
		Token:   token,
		Patient: responses.NewPatientResponse(patient),
	}, nil
}
