package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a valid datetime",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Machine-readable error codes surfaced to clients on booking failures.
const (
	ErrCodeSlotLocked       = "SLOT_LOCKED"
	ErrCodeUserConflict     = "USER_CONFLICT"
	ErrCodeProviderConflict = "PROVIDER_CONFLICT"
	ErrCodePastDateTime     = "PAST_DATETIME"
	ErrCodePatientNotFound  = "PATIENT_NOT_FOUND"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientProviderNotFound              = "provider not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotLocked                    = "this time slot is currently being booked by another patient, please wait a moment and try again"
	ErrClientUserConflict                  = "appointment time conflicts with your existing appointment, please choose a different time"
	ErrClientProviderConflict              = "appointment time conflicts with the provider's existing appointment, please choose a different time"
	ErrClientPastDateTime                  = "cannot book appointments in the past"
	ErrClientDateParamRequired             = "date parameter is required"
	ErrClientTooManyBookingAttempts        = "too many booking attempts, please slow down"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevTooManyBookingAttempts  = "booking attempt rate limit exceeded"
	ErrDevCannotParseJSON         = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON       = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDatetime     = "cannot parse the requested datetime"
	ErrDevCannotParseDate         = "cannot parse the requested date"
	ErrDevServerDeadlineExceeded  = "the server process exceeded its deadline"
	ErrDevServerProcess           = "unexpected server processing failure"
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevInvalidCredentials      = "invalid credentials"
	ErrDevAuthTokenMissing        = "authorization token is missing"
	ErrDevAuthTokenInvalid        = "authorization token is invalid"
	ErrDevAuthSigningMethod       = "unexpected jwt signing method"
	ErrDevAuthGenerateToken       = "failed to generate jwt token"
	ErrDevPatientNotExists        = "patient does not exist"
	ErrDevAppointmentNotExists    = "appointment does not exist on patient record"
	ErrDevEmailAlreadyExists      = "patient with this email already exists"
	ErrDevBookingSlotLocked       = "slot lock held by a concurrent booking attempt"
	ErrDevBookingUserConflict     = "candidate interval overlaps one of the patient's active appointments"
	ErrDevBookingProviderConflict = "candidate interval overlaps an active appointment of the same provider"
	ErrDevBookingPastDateTime     = "requested start instant is before the current instant"

	ErrDevDBFailedToFindDocument    = "failed to find document in database"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents from database cursor"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document from database"

	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisExistsKey  = "failed to check key existence in redis"
	ErrDevRedisExpireKey  = "failed to refresh key expiration in redis"

	ErrDevRabbitMQOpenChannel    = "failed to open channel on rabbitmq connection"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitmq queue"
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue"
)
