package bookings

import (
	"context"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	PatientRepository contracts.PatientRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAvailabilityUsecase(
	patientRepository contracts.PatientRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		PatientRepository: patientRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// GetAvailability enumerates every slot boundary inside the business-hours
// window on the requested date and keeps the ones no active appointment for
// the provider occupies. A slot counts as occupied when its interval overlaps
// any such appointment, not only on exact start equality.
func (uc *availabilityUsecase) GetAvailability(ctx context.Context, provider, date string) (*responses.Availability, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	booked := collectProviderAppointments(patients, provider, day)

	windowStart := day.Add(time.Duration(uc.InternalConfig.Booking.WindowStartHour) * time.Hour)
	windowEnd := day.Add(time.Duration(uc.InternalConfig.Booking.WindowEndHour) * time.Hour)

	availableSlots := make([]string, 0)
	for slotStart := windowStart; slotStart.Before(windowEnd); slotStart = slotStart.Add(utils.AppointmentSlotDuration) {
		slotEnd := slotStart.Add(utils.AppointmentSlotDuration)
		if !overlapsBooked(booked, slotStart, slotEnd) {
			availableSlots = append(availableSlots, utils.FormatSlotLocal(slotStart))
		}
	}

	uc.Log.Info("availabilityUsecase.GetAvailability slots computed",
		zap.String(constvars.LoggingProviderKey, provider),
		zap.String(constvars.LoggingDateKey, date),
		zap.Int(constvars.LoggingSlotCountKey, len(availableSlots)),
	)

	return &responses.Availability{
		Provider:       provider,
		Date:           date,
		AvailableSlots: availableSlots,
	}, nil
}

// collectProviderAppointments gathers the start instants of every active
// appointment for the provider that falls on the requested local date.
func collectProviderAppointments(patients []models.Patient, provider string, day time.Time) []time.Time {
	var starts []time.Time
	for i := range patients {
		for j := range patients[i].Appointments {
			appointment := &patients[i].Appointments[j]
			if !appointment.IsActive || appointment.Provider != provider {
				continue
			}
			start, err := utils.ParseAppointmentTime(appointment.Datetime)
			if err != nil {
				continue
			}
			if utils.SameLocalDate(start, day) {
				starts = append(starts, start)
			}
		}
	}
	return starts
}

func overlapsBooked(booked []time.Time, slotStart, slotEnd time.Time) bool {
	for _, bookedStart := range booked {
		bookedEnd := bookedStart.Add(utils.AppointmentSlotDuration)
		if utils.IntervalsOverlap(slotStart, slotEnd, bookedStart, bookedEnd) {
			return true
		}
	}
	return false
}
