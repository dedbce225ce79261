package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "requestID"
	CONTEXT_SESSION_KEY    contextKey = "session"
)

const (
	MongoCollectionPatients    = "patients"
	MongoCollectionProviders   = "providers"
	MongoCollectionMedications = "medications"
)

const (
	// RedisBookingLockKeyFormat composes the slot lock key from the provider
	// identifier and the canonical UTC RFC3339 form of the slot start instant.
	RedisBookingLockKeyFormat = "booking_lock:%s:%s"

	RabbitMQBookingEventsQueue = "booking.events"
	BookingCreatedEventName    = "booking.created"
)

const (
	RepeatRuleNone    = "none"
	RepeatRuleWeekly  = "weekly"
	RepeatRuleMonthly = "monthly"
)
