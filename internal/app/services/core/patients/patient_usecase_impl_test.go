package patients

import (
	"context"
	"errors"
	"testing"
	"time"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memoryPatientRepository struct {
	patients map[string]*models.Patient
}

func newMemoryPatientRepository(patients ...*models.Patient) *memoryPatientRepository {
	repo := &memoryPatientRepository{patients: make(map[string]*models.Patient)}
	for _, patient := range patients {
		repo.patients[patient.ID] = patient
	}
	return repo
}

func (m *memoryPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	all := make([]models.Patient, 0, len(m.patients))
	for _, patient := range m.patients {
		all = append(all, *patient)
	}
	return all, nil
}

func (m *memoryPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := m.patients[patientID]
	if !ok {
		return nil, nil
	}
	clone := *patient
	clone.Appointments = append([]models.Appointment(nil), patient.Appointments...)
	clone.Prescriptions = append([]models.Prescription(nil), patient.Prescriptions...)
	return &clone, nil
}

func (m *memoryPatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	for _, patient := range m.patients {
		if patient.Email == email {
			clone := *patient
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memoryPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	m.patients[patient.ID] = patient
	return nil
}

func (m *memoryPatientRepository) UpdateFields(ctx context.Context, patientID string, fields map[string]interface{}) error {
	patient, ok := m.patients[patientID]
	if !ok {
		return errors.New("patient not found")
	}
	if name, ok := fields["name"].(string); ok {
		patient.Name = name
	}
	if email, ok := fields["email"].(string); ok {
		patient.Email = email
	}
	if password, ok := fields["password"].(string); ok {
		patient.Password = password
	}
	if appointments, ok := fields["appointments"].([]models.Appointment); ok {
		patient.Appointments = appointments
	}
	if prescriptions, ok := fields["prescriptions"].([]models.Prescription); ok {
		patient.Prescriptions = prescriptions
	}
	return nil
}

func (m *memoryPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	delete(m.patients, patientID)
	return nil
}

func newTestPatientUsecase(repo *memoryPatientRepository, now time.Time) *patientUsecase {
	return &patientUsecase{
		PatientRepository: repo,
		Log:               zap.NewNop(),
		nowFn:             func() time.Time { return now },
	}
}

func TestPatientUsecase_GetDashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)

	t.Run("SortsAndCapsUpcomingAppointments", func(t *testing.T) {
		repo := newMemoryPatientRepository(&models.Patient{
			ID:   "patient-1",
			Name: "Ada",
			Appointments: []models.Appointment{
				{ID: "a4", Provider: "dr-smith", Datetime: "2026-03-12T10:00", IsActive: true},
				{ID: "a1", Provider: "dr-smith", Datetime: "2026-03-09T10:00", IsActive: true},
				{ID: "past", Provider: "dr-smith", Datetime: "2026-03-08T10:00", IsActive: true},
				{ID: "a3", Provider: "dr-smith", Datetime: "2026-03-11T10:00", IsActive: true},
				{ID: "inactive", Provider: "dr-smith", Datetime: "2026-03-10T09:00", IsActive: false},
				{ID: "a2", Provider: "dr-smith", Datetime: "2026-03-10T10:00", IsActive: true},
			},
		})
		uc := newTestPatientUsecase(repo, now)

		dashboard, err := uc.GetDashboard(ctx, "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, "Ada", dashboard.Patient.Name)
		assert.Len(t, dashboard.UpcomingAppointments, 3)
		assert.Equal(t, "a1", dashboard.UpcomingAppointments[0].ID)
		assert.Equal(t, "a2", dashboard.UpcomingAppointments[1].ID)
		assert.Equal(t, "a3", dashboard.UpcomingAppointments[2].ID)
	})

	t.Run("OnlyActiveCurrentPrescriptions", func(t *testing.T) {
		repo := newMemoryPatientRepository(&models.Patient{
			ID: "patient-1",
			Prescriptions: []models.Prescription{
				{ID: "p1", Medication: "amoxicillin", EndDate: "2026-03-20", IsActive: true},
				{ID: "p2", Medication: "ibuprofen", EndDate: "2026-03-20", IsActive: false},
				{ID: "p3", Medication: "lisinopril", EndDate: "2026-03-01", IsActive: true},
			},
		})
		uc := newTestPatientUsecase(repo, now)

		dashboard, err := uc.GetDashboard(ctx, "patient-1")

		assert.NoError(t, err)
		assert.Len(t, dashboard.UpcomingRefills, 1)
		assert.Equal(t, "p1", dashboard.UpcomingRefills[0].ID)
	})

	t.Run("UnknownPatient", func(t *testing.T) {
		uc := newTestPatientUsecase(newMemoryPatientRepository(), now)

		_, err := uc.GetDashboard(ctx, "ghost")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestPatientUsecase_CreatePatient(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)

	t.Run("HashesPassword", func(t *testing.T) {
		repo := newMemoryPatientRepository()
		uc := newTestPatientUsecase(repo, now)

		patient, err := uc.CreatePatient(ctx, &requests.CreatePatient{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "correct-horse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, patient.ID)

		stored := repo.patients[patient.ID]
		assert.NotEqual(t, "correct-horse", stored.Password)
		assert.True(t, utils.CheckPasswordHash("correct-horse", stored.Password))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := newMemoryPatientRepository(&models.Patient{ID: "patient-1", Email: "ada@example.com"})
		uc := newTestPatientUsecase(repo, now)

		_, err := uc.CreatePatient(ctx, &requests.CreatePatient{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "correct-horse",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestPatientUsecase_DeactivateAppointment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)

	t.Run("DeactivatesWithoutDeleting", func(t *testing.T) {
		repo := newMemoryPatientRepository(&models.Patient{
			ID: "patient-1",
			Appointments: []models.Appointment{
				{ID: "appt-1", Provider: "dr-smith", Datetime: "2026-03-09T10:00", IsActive: true},
			},
		})
		uc := newTestPatientUsecase(repo, now)

		err := uc.DeactivateAppointment(ctx, "patient-1", "appt-1")

		assert.NoError(t, err)
		stored := repo.patients["patient-1"]
		assert.Len(t, stored.Appointments, 1)
		assert.False(t, stored.Appointments[0].IsActive)
	})

	t.Run("UnknownAppointment", func(t *testing.T) {
		repo := newMemoryPatientRepository(&models.Patient{ID: "patient-1"})
		uc := newTestPatientUsecase(repo, now)

		err := uc.DeactivateAppointment(ctx, "patient-1", "ghost")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestPatientUsecase_FindAllWithSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)

	repo := newMemoryPatientRepository(&models.Patient{
		ID: "patient-1",
		Appointments: []models.Appointment{
			{ID: "past", Provider: "dr-smith", Datetime: "2026-03-08T10:00", IsActive: true},
			{ID: "next", Provider: "dr-smith", Datetime: "2026-03-10T10:00", IsActive: true},
		},
		Prescriptions: []models.Prescription{
			{ID: "p1", Medication: "amoxicillin", IsActive: true},
		},
	})
	uc := newTestPatientUsecase(repo, now)

	summaries, err := uc.FindAllWithSummary(ctx)

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].TotalAppointments)
	assert.Equal(t, 1, summaries[0].TotalPrescriptions)
	assert.NotNil(t, summaries[0].NextAppointment)
	assert.Equal(t, "next", summaries[0].NextAppointment.ID)
}

func TestPatientUsecase_UpdatePatient(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)

	t.Run("PartialUpdate", func(t *testing.T) {
		repo := newMemoryPatientRepository(&models.Patient{ID: "patient-1", Name: "Ada", Email: "ada@example.com"})
		uc := newTestPatientUsecase(repo, now)

		updated, err := uc.UpdatePatient(ctx, "patient-1", &requests.UpdatePatient{Name: "Ada Lovelace"})

		assert.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", updated.Name)
		assert.Equal(t, "ada@example.com", updated.Email)
		assert.Equal(t, "Ada Lovelace", repo.patients["patient-1"].Name)
	})

	t.Run("EmailTakenByAnotherPatient", func(t *testing.T) {
		repo := newMemoryPatientRepository(
			&models.Patient{ID: "patient-1", Email: "ada@example.com"},
			&models.Patient{ID: "patient-2", Email: "grace@example.com"},
		)
		uc := newTestPatientUsecase(repo, now)

		_, err := uc.UpdatePatient(ctx, "patient-1", &requests.UpdatePatient{Email: "grace@example.com"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}
