package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse is returned when a set or subscription change is refused
type ConflictResponse struct {
	Errors string `json:"errors"`
}

// DetailResponse is returned for authentication, permission and lookup failures
type DetailResponse struct {
	Detail string `json:"detail"`
}

// encodeBuffers holds scratch buffers for response encoding
var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgAuthRequiredError   = "Authentication credentials were not provided."
	ErrMsgForbiddenError      = "You do not have permission to perform this action."
	ErrMsgRecipeNotFoundError = "Recipe not found."
	ErrMsgUserNotFoundError   = "User not found."
	ErrMsgTagNotFoundError    = "Tag not found."
	ErrMsgIngredientNotFound  = "Ingredient not found."
	ErrMsgAlreadyInList       = "Recipe is already in the list."
	ErrMsgNotInList           = "Recipe is not in the list."
	ErrMsgAlreadySubscribed   = "You are already subscribed to this author."
	ErrMsgNotSubscribed       = "You are not subscribed to this author."
	ErrMsgSelfSubscribe       = "You cannot subscribe to yourself."
	ErrMsgDuplicateLinkError  = "Ingredients must be unique."
)

// errorKind tells respondServiceError how to shape the body
type errorKind int

const (
	kindError errorKind = iota
	kindConflict
	kindDetail
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// user-facing message
func mapServiceErrorToUserMessage(err error) (int, string) {
	status, msg, _ := classifyError(err)
	return status, msg
}

func classifyError(err error) (int, string, errorKind) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError, kindError
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgAuthRequiredError, kindDetail
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError, kindDetail
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError, kindDetail
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError, kindDetail
	case errors.Is(err, domain.ErrTagNotFound):
		return http.StatusNotFound, ErrMsgTagNotFoundError, kindDetail
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusNotFound, ErrMsgIngredientNotFound, kindDetail
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest, ErrMsgAlreadyInList, kindConflict
	case errors.Is(err, domain.ErrMembershipNotFound):
		return http.StatusBadRequest, ErrMsgNotInList, kindConflict
	case errors.Is(err, domain.ErrAlreadySubscribed):
		return http.StatusBadRequest, ErrMsgAlreadySubscribed, kindConflict
	case errors.Is(err, domain.ErrNotSubscribed):
		return http.StatusBadRequest, ErrMsgNotSubscribed, kindConflict
	case errors.Is(err, domain.ErrSelfFollow):
		return http.StatusBadRequest, ErrMsgSelfSubscribe, kindConflict
	case errors.Is(err, domain.ErrDuplicateLink):
		return http.StatusBadRequest, ErrMsgDuplicateLinkError, kindConflict
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidMembershipKind):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary, kindError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError, kindError
}

// respondServiceError writes the response for an error returned by a service.
// Validation failures become field-keyed 400s; server errors are logged with
// the action that failed and never leak details.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := logger.FromContext(r.Context())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		log.Debug(action+" rejected", "fields", verr.Messages())
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: verr.Messages(),
		})
		return
	}

	status, msg, kind := classifyError(err)
	if status >= http.StatusInternalServerError {
		log.Error(action, "error", err)
		respondError(w, status, msg)
		return
	}

	log.Debug(action+" refused", "status", status, "error", err)
	switch kind {
	case kindConflict:
		respondJSON(w, status, ConflictResponse{Errors: msg})
	case kindDetail:
		respondJSON(w, status, DetailResponse{Detail: msg})
	default:
		respondError(w, status, msg)
	}
}
