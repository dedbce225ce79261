package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingPatientIDKey          = "patient_id"
	LoggingProviderKey           = "provider"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingAppointmentTimeKey    = "appointment_time"
	LoggingRedisKey              = "redis_key"
	LoggingLockOwnerKey          = "lock_owner"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingDateKey               = "date"
	LoggingSlotCountKey          = "slot_count"
	LoggingResponseCountKey      = "response_count"
)
