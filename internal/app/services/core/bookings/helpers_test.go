package bookings

import (
	"context"
	"errors"
	"sync"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"

	"go.uber.org/zap"
)

// fakePatientRepository is an in-memory patient record store. updateErr, when
// set, makes UpdateFields fail to simulate a persistence outage.
type fakePatientRepository struct {
	mu        sync.Mutex
	patients  map[string]*models.Patient
	updateErr error
}

func newFakePatientRepository(patients ...*models.Patient) *fakePatientRepository {
	repo := &fakePatientRepository{patients: make(map[string]*models.Patient)}
	for _, patient := range patients {
		repo.patients[patient.ID] = patient
	}
	return repo
}

func (f *fakePatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]models.Patient, 0, len(f.patients))
	for _, patient := range f.patients {
		all = append(all, *patient)
	}
	return all, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	clone := *patient
	clone.Appointments = append([]models.Appointment(nil), patient.Appointments...)
	return &clone, nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, patient := range f.patients {
		if patient.Email == email {
			clone := *patient
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepository) UpdateFields(ctx context.Context, patientID string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	patient, ok := f.patients[patientID]
	if !ok {
		return errors.New("patient not found")
	}
	if appointments, ok := fields["appointments"].([]models.Appointment); ok {
		patient.Appointments = appointments
	}
	if prescriptions, ok := fields["prescriptions"].([]models.Prescription); ok {
		patient.Prescriptions = prescriptions
	}
	return nil
}

func (f *fakePatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.patients, patientID)
	return nil
}

// fakeSlotLock implements the slot lock contract with an in-process map so
// booking tests can assert on lock state after each exit path.
type fakeSlotLock struct {
	mu    sync.Mutex
	locks map[string]string
}

func newFakeSlotLock() *fakeSlotLock {
	return &fakeSlotLock{locks: make(map[string]string)}
}

func slotKey(providerID string, start time.Time) string {
	return providerID + "|" + start.UTC().Format(time.RFC3339)
}

func (f *fakeSlotLock) Acquire(ctx context.Context, providerID string, start time.Time, requestorID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := slotKey(providerID, start)
	if _, held := f.locks[key]; held {
		return false
	}
	f.locks[key] = requestorID
	return true
}

func (f *fakeSlotLock) Release(ctx context.Context, providerID string, start time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locks, slotKey(providerID, start))
}

func (f *fakeSlotLock) Extend(ctx context.Context, providerID string, start time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, held := f.locks[slotKey(providerID, start)]
	return held
}

func (f *fakeSlotLock) Owner(ctx context.Context, providerID string, start time.Time) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locks[slotKey(providerID, start)]
}

func (f *fakeSlotLock) held(providerID string, start time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, held := f.locks[slotKey(providerID, start)]
	return held
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []*contracts.BookingCreatedEvent
	err    error
}

func (f *fakeEventPublisher) PublishBookingCreated(ctx context.Context, event *contracts.BookingCreatedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventPublisher) published() []*contracts.BookingCreatedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*contracts.BookingCreatedEvent(nil), f.events...)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Booking: config.Booking{
			LockTTLInSeconds:     10,
			WindowStartHour:      9,
			WindowEndHour:        17,
			MaxAttemptsPerMinute: 20,
		},
	}
}

func newTestBookingUsecase(
	repo contracts.PatientRepository,
	lock contracts.SlotLockService,
	publisher contracts.BookingEventPublisher,
	now time.Time,
) *bookingUsecase {
	return &bookingUsecase{
		PatientRepository: repo,
		SlotLockService:   lock,
		EventPublisher:    publisher,
		InternalConfig:    testInternalConfig(),
		Log:               zap.NewNop(),
		nowFn:             func() time.Time { return now },
	}
}
