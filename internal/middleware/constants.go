package middleware

// Authorization header schemes
const (
	HeaderAuthorization = "Authorization"
	SchemeBearer        = "Bearer"
	SchemeToken         = "Token"
)

// AnonymousUserID is the identity of requests without credentials
const AnonymousUserID int64 = 0

// JWT settings
const (
	SigningMethod = "HS256"
)

// HTTP error messages
const (
	ErrMsgInvalidToken = "Invalid token."
	ErrMsgNotAuthed    = "Authentication credentials were not provided."
)

// Log Messages
const (
	LogMsgInvalidToken   = "Rejected request with invalid token"
	LogMsgAuthRequired   = "Rejected anonymous request to protected route"
	LogMsgIdentityLoaded = "Request identity resolved"
)
