package bookings

import (
	"context"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	PatientRepository contracts.PatientRepository
	SlotLockService   contracts.SlotLockService
	EventPublisher    contracts.BookingEventPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	nowFn             func() time.Time
}

func NewBookingUsecase(
	patientRepository contracts.PatientRepository,
	slotLockService contracts.SlotLockService,
	eventPublisher contracts.BookingEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		PatientRepository: patientRepository,
		SlotLockService:   slotLockService,
		EventPublisher:    eventPublisher,
		InternalConfig:    internalConfig,
		Log:               logger,
		nowFn:             time.Now,
	}
}

// BookAppointment runs the concurrent-safe booking protocol. The slot lock is
// taken before any record reads so contention is resolved cheaply, and the
// deferred release covers every exit path, including persistence failures.
func (uc *bookingUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error) {
	start, err := utils.ParseAppointmentTime(request.Datetime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDatetime(err)
	}

	if !uc.SlotLockService.Acquire(ctx, request.Provider, start, request.UserID) {
		uc.Log.Info("bookingUsecase.BookAppointment slot lock contended",
			zap.String(constvars.LoggingProviderKey, request.Provider),
			zap.String(constvars.LoggingAppointmentTimeKey, request.Datetime),
		)
		return nil, exceptions.ErrBookingSlotLocked()
	}
	defer uc.SlotLockService.Release(ctx, request.Provider, start)

	patient, err := uc.PatientRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	end := start.Add(utils.AppointmentSlotDuration)

	// Self-conflict first: the patient's own calendar is already loaded, so
	// it is the cheapest check. Any overlapping active appointment blocks,
	// regardless of provider.
	if overlapsAny(patient.Appointments, start, end) {
		return nil, exceptions.ErrBookingUserConflict()
	}

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if overlapsProvider(patients[i].Appointments, request.Provider, start, end) {
			uc.Log.Info("bookingUsecase.BookAppointment provider conflict",
				zap.String(constvars.LoggingProviderKey, request.Provider),
				zap.String(constvars.LoggingPatientIDKey, patients[i].ID),
			)
			return nil, exceptions.ErrBookingProviderConflict()
		}
	}

	if start.Before(uc.nowFn()) {
		return nil, exceptions.ErrBookingPastDateTime()
	}

	repeat := request.Repeat
	if repeat == "" {
		repeat = constvars.RepeatRuleNone
	}
	appointment := models.Appointment{
		ID:       uuid.NewString(),
		Provider: request.Provider,
		Datetime: request.Datetime,
		Repeat:   repeat,
		IsActive: true,
	}

	updatedAppointments := append(patient.Appointments, appointment)
	err = uc.PatientRepository.UpdateFields(ctx, patient.ID, map[string]interface{}{
		"appointments": updatedAppointments,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.BookAppointment appointment booked",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingProviderKey, appointment.Provider),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	uc.publishBookingCreated(ctx, patient.ID, &appointment)

	return &appointment, nil
}

// publishBookingCreated is best-effort: a broker outage must never fail a
// booking that is already persisted.
func (uc *bookingUsecase) publishBookingCreated(ctx context.Context, patientID string, appointment *models.Appointment) {
	if uc.EventPublisher == nil {
		return
	}

	event := &contracts.BookingCreatedEvent{
		AppointmentID: appointment.ID,
		PatientID:     patientID,
		Provider:      appointment.Provider,
		Datetime:      appointment.Datetime,
		OccurredAt:    uc.nowFn().UTC().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishBookingCreated(ctx, event); err != nil {
		uc.Log.Error("bookingUsecase.publishBookingCreated error publishing event",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func overlapsAny(appointments []models.Appointment, start, end time.Time) bool {
	for i := range appointments {
		if !appointments[i].IsActive {
			continue
		}
		existingStart, err := utils.ParseAppointmentTime(appointments[i].Datetime)
		if err != nil {
			continue
		}
		existingEnd := existingStart.Add(utils.AppointmentSlotDuration)
		if utils.IntervalsOverlap(start, end, existingStart, existingEnd) {
			return true
		}
	}
	return false
}

func overlapsProvider(appointments []models.Appointment, provider string, start, end time.Time) bool {
	for i := range appointments {
		if !appointments[i].IsActive || appointments[i].Provider != provider {
			continue
		}
		existingStart, err := utils.ParseAppointmentTime(appointments[i].Datetime)
		if err != nil {
			continue
		}
		existingEnd := existingStart.Add(utils.AppointmentSlotDuration)
		if utils.IntervalsOverlap(start, end, existingStart, existingEnd) {
			return true
		}
	}
	return false
}
