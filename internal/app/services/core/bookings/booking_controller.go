package bookings

import (
	"context"
	"net/http"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log                 *zap.Logger
	BookingUsecase      contracts.BookingUsecase
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewBookingController(
	logger *zap.Logger,
	bookingUsecase contracts.BookingUsecase,
	availabilityUsecase contracts.AvailabilityUsecase,
) *BookingController {
	return &BookingController{
		Log:                 logger,
		BookingUsecase:      bookingUsecase,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *BookingController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointment)
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

	appointment, err := ctrl.BookingUsecase.BookAppointment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccessMessage, appointment)
}

func (ctrl *BookingController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, constvars.URLParamProvider)
	date := r.URL.Query().Get(constvars.QueryParamDate)
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDateParamRequired())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	availability, err := ctrl.AvailabilityUsecase.GetAvailability(ctx, provider, date)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, availability)
}
