package health

import (
	"context"
	"net/http"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log           *zap.Logger
	HealthUsecase contracts.HealthUsecase
}

func NewHealthController(logger *zap.Logger, healthUsecase contracts.HealthUsecase) *HealthController {
	return &HealthController{
		Log:           logger,
		HealthUsecase: healthUsecase,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result := ctrl.HealthUsecase.Check(ctx)

	code := constvars.StatusOK
	if result.Status != statusHealthy {
		code = constvars.StatusServiceUnavailable
	}
	utils.BuildSuccessResponse(w, code, result.Status, result)
}
