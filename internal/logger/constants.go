package logger

// Context keys under which request-scoped values are stored
const (
	ContextKeyRequestID = "request_id"
	ContextKeyUserID    = "user_id"
)

// Accepted LOG_LEVEL values; anything else means info
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "foodgram"
	DefaultVersion     = "dev"
)

// ENVIRONMENT values the logger distinguishes
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys attached to every record or taken from the context
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = ContextKeyRequestID
	AttrKeyUserID      = ContextKeyUserID
)
