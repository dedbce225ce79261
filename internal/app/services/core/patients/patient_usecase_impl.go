package patients

import (
	"context"
	"sort"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dashboardItemLimit caps the upcoming appointment and refill lists on the
// patient dashboard.
const dashboardItemLimit = 3

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
	nowFn             func() time.Time
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
		nowFn:             time.Now,
	}
}

func (uc *patientUsecase) GetDashboard(ctx context.Context, patientID string) (*responses.Dashboard, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	upcoming := upcomingAppointments(patient.Appointments, uc.nowFn())
	if len(upcoming) > dashboardItemLimit {
		upcoming = upcoming[:dashboardItemLimit]
	}

	today := uc.nowFn()
	refills := make([]models.Prescription, 0)
	for _, prescription := range patient.Prescriptions {
		if !prescription.IsActive {
			continue
		}
		// A prescription whose course has already ended is not a refill
		// candidate. Unparsable end dates are kept rather than hidden.
		if endDate, err := utils.ParseDate(prescription.EndDate); err == nil {
			if endDate.AddDate(0, 0, 1).Before(today) {
				continue
			}
		}
		refills = append(refills, prescription)
		if len(refills) == dashboardItemLimit {
			break
		}
	}

	return &responses.Dashboard{
		Patient: responses.DashboardPatient{
			ID:    patient.ID,
			Name:  patient.Name,
			Email: patient.Email,
		},
		UpcomingAppointments: upcoming,
		UpcomingRefills:      refills,
	}, nil
}

func (uc *patientUsecase) FindAllWithSummary(ctx context.Context) ([]responses.PatientSummary, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.nowFn()
	summaries := make([]responses.PatientSummary, 0, len(patients))
	for i := range patients {
		patient := &patients[i]
		summary := responses.PatientSummary{
			Patient:            responses.NewPatientResponse(patient),
			TotalAppointments:  len(patient.Appointments),
			TotalPrescriptions: len(patient.Prescriptions),
		}
		if upcoming := upcomingAppointments(patient.Appointments, now); len(upcoming) > 0 {
			summary.NextAppointment = &upcoming[0]
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	response := responses.NewPatientResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	existing, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExists(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patient := &models.Patient{
		ID:            uuid.NewString(),
		Name:          request.Name,
		Email:         request.Email,
		Password:      hashedPassword,
		Appointments:  []models.Appointment{},
		Prescriptions: []models.Prescription{},
	}
	if err := uc.PatientRepository.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.CreatePatient patient created",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	response := responses.NewPatientResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	fields := make(map[string]interface{})
	if request.Name != "" {
		fields["name"] = request.Name
		patient.Name = request.Name
	}
	if request.Email != "" && request.Email != patient.Email {
		existing, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExists(nil)
		}
		fields["email"] = request.Email
		patient.Email = request.Email
	}
	if request.Password != "" {
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		fields["password"] = hashedPassword
	}

	if len(fields) > 0 {
		if err := uc.PatientRepository.UpdateFields(ctx, patientID, fields); err != nil {
			return nil, err
		}
	}

	response := responses.NewPatientResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}
	return uc.PatientRepository.DeleteByID(ctx, patientID)
}

// CreateAppointment is the administrative create path: it bypasses the slot
// lock and conflict protocol entirely.
func (uc *patientUsecase) CreateAppointment(ctx context.Context, patientID string, request *requests.CreateAppointment) (*models.Appointment, error) {
	if _, err := utils.ParseAppointmentTime(request.Datetime); err != nil {
		return nil, exceptions.ErrCannotParseDatetime(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
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

	updated := append(patient.Appointments, appointment)
	err = uc.PatientRepository.UpdateFields(ctx, patientID, map[string]interface{}{
		"appointments": updated,
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (uc *patientUsecase) DeactivateAppointment(ctx context.Context, patientID, appointmentID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}

	found := false
	for i := range patient.Appointments {
		if patient.Appointments[i].ID == appointmentID {
			patient.Appointments[i].IsActive = false
			found = true
			break
		}
	}
	if !found {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	return uc.PatientRepository.UpdateFields(ctx, patientID, map[string]interface{}{
		"appointments": patient.Appointments,
	})
}

func (uc *patientUsecase) CreatePrescription(ctx context.Context, patientID string, request *requests.CreatePrescription) (*models.Prescription, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	prescription := models.Prescription{
		ID:             uuid.NewString(),
		Medication:     request.Medication,
		Dosage:         request.Dosage,
		Instructions:   request.Instructions,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		RefillSchedule: request.RefillSchedule,
		IsActive:       true,
	}

	updated := append(patient.Prescriptions, prescription)
	err = uc.PatientRepository.UpdateFields(ctx, patientID, map[string]interface{}{
		"prescriptions": updated,
	})
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

// upcomingAppointments filters to active future appointments sorted by start
// instant. Appointments with unparsable datetimes are skipped.
func upcomingAppointments(appointments []models.Appointment, now time.Time) []models.Appointment {
	type timed struct {
		appointment models.Appointment
		start       time.Time
	}
	var upcoming []timed
	for _, appointment := range appointments {
		if !appointment.IsActive {
			continue
		}
		start, err := utils.ParseAppointmentTime(appointment.Datetime)
		if err != nil || start.Before(now) {
			continue
		}
		upcoming = append(upcoming, timed{appointment: appointment, start: start})
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].start.Before(upcoming[j].start)
	})

	result := make([]models.Appointment, 0, len(upcoming))
	for _, item := range upcoming {
		result = append(result, item.appointment)
	}
	return result
}
