package eventlog

// JSON payload field keys that identify the acting user
const (
	PayloadKeyUserID   = "user_id"
	PayloadKeyAuthorID = "author_id"
)

// DefaultRecentLimit bounds Recent when the caller passes no limit
const DefaultRecentLimit = 50

// MaxRecentLimit is the largest page Recent returns
const MaxRecentLimit = 200

// Log messages - service events
const (
	LogMsgEventPayloadNotObject = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent      = "Failed to log event to database"
	LogMsgEventLogged           = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldUserID        = "user_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deleted_count"
	LogFieldCutoff        = "cutoff"
)

// Error messages
const (
	ErrMsgFailedEncodePayload = "failed to encode event payload"
	ErrMsgCleanupFailed       = "event log cleanup"
)
