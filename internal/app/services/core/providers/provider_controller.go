package providers

import (
	"context"
	"net/http"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
}

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase) *ProviderController {
	return &ProviderController{
		Log:             logger,
		ProviderUsecase: providerUsecase,
	}
}

func (ctrl *ProviderController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	providers, err := ctrl.ProviderUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProvidersSuccessMessage, providers)
}

func (ctrl *ProviderController) CreateProvider(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateProvider)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	provider, err := ctrl.ProviderUsecase.CreateProvider(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProviderSuccessMessage, provider)
}
