package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/Foodgram_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user id
	UserIDKey contextKey = "user_id"
)

var (
	errMissingSubject = errors.New("token has no subject")
	errBadScheme      = errors.New("unsupported authorization scheme")
)

// WithUserID adds the authenticated user id to the context
func WithUserID(ctx context.Context, userID int64) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return logger.WithUserID(ctx, userID)
}

// GetUserID returns the authenticated user id, or AnonymousUserID
func GetUserID(ctx context.Context) int64 {
	if userID, ok := ctx.Value(UserIDKey).(int64); ok {
		return userID
	}
	return AnonymousUserID
}

// Authenticator resolves request identity from HS256 bearer tokens whose
// subject is the user id. Tokens are issued by the authentication service.
type Authenticator struct {
	secret     []byte
	parser     *jwt.Parser
	onRejected func(r *http.Request)
}

// NewAuthenticator creates an Authenticator verifying tokens with secret
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{SigningMethod}),
			jwt.WithExpirationRequired(),
		),
	}
}

// OnRejected registers fn to be called for every request carrying an invalid token
func (a *Authenticator) OnRejected(fn func(r *http.Request)) {
	a.onRejected = fn
}

// Identify attaches the caller's user id to the request context. Requests
// without an Authorization header continue anonymously; a present but invalid
// token is rejected with 401.
func (a *Authenticator) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderAuthorization)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := a.ParseHeader(header)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgInvalidToken, "path", r.URL.Path, "error", err)
			if a.onRejected != nil {
				a.onRejected(r)
			}
			writeUnauthorized(w, ErrMsgInvalidToken)
			return
		}

		ctx := WithUserID(r.Context(), userID)
		logger.FromContext(ctx).Debug(LogMsgIdentityLoaded)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ParseHeader validates an Authorization header value and returns the user id
func (a *Authenticator) ParseHeader(header string) (int64, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || (!strings.EqualFold(scheme, SchemeBearer) && !strings.EqualFold(scheme, SchemeToken)) {
		return 0, errBadScheme
	}
	return a.ParseToken(strings.TrimSpace(token))
}

// ParseToken validates a raw token and returns the user id from its subject
func (a *Authenticator) ParseToken(raw string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return 0, err
	}

	if claims.Subject == "" {
		return 0, errMissingSubject
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	return userID, nil
}

// IssueToken signs a token for userID valid for ttl. Used by development
// tooling and tests; production tokens come from the authentication service.
func (a *Authenticator) IssueToken(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserID(r.Context()) == AnonymousUserID {
			logger.FromContext(r.Context()).Warn(LogMsgAuthRequired, "method", r.Method, "path", r.URL.Path)
			writeUnauthorized(w, ErrMsgNotAuthed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", SchemeBearer)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
