package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Auth settings
const (
	MagicLinkTokenLength   = 32
	MagicLinkTTLMinutes    = 15
	SessionTokenTTLHours   = 12
	RedisKeyMagicLink      = "auth:magic-link:"
	RedisKeyTokenBlacklist = "auth:blacklist:"
)

// Asynq task types
const (
	TaskTypeMagicLinkEmail = "email:magic_link"
)

// Program window. Group meetings only occur inside this range; enrollment
// windows are clipped against it when generating weekly schedules.
const (
	ProgramStartDate = "2025-10-01"
	ProgramEndDate   = "2026-04-30"
)

// DateLayout is the ISO calendar-date format used for all ledger keys and
// enrollment dates.
const DateLayout = "2006-01-02"
