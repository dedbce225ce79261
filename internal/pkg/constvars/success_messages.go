package constvars

const (
	LoginSuccessMessage = "login successful"

	GetDashboardSuccessMessage = "dashboard retrieved successfully"

	GetPatientsSuccessMessage   = "patients retrieved successfully"
	GetPatientSuccessMessage    = "patient retrieved successfully"
	CreatePatientSuccessMessage = "patient created successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	CreateAppointmentSuccessMessage     = "appointment created successfully"
	BookAppointmentSuccessMessage       = "appointment booked successfully"
	DeactivateAppointmentSuccessMessage = "appointment deactivated successfully"
	GetAvailabilitySuccessMessage       = "availability retrieved successfully"

	CreatePrescriptionSuccessMessage = "prescription created successfully"

	GetProvidersSuccessMessage   = "providers retrieved successfully"
	CreateProviderSuccessMessage = "provider created successfully"

	GetMedicationsSuccessMessage   = "medications retrieved successfully"
	CreateMedicationSuccessMessage = "medication created successfully"
)
