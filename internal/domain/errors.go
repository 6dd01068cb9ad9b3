package domain

import (
	"errors"
	"sort"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUnauthorized  = "authentication credentials were not provided"
	ErrMsgForbidden     = "you do not have permission to perform this action"
	ErrMsgSelfFollow    = "you cannot subscribe to yourself"
	ErrMsgAlreadyFollow = "you are already subscribed to this author"
	ErrMsgNotFollowing  = "you are not subscribed to this author"

	// Catalog errors
	ErrMsgIngredientNotFound = "ingredient not found"
	ErrMsgTagNotFound        = "tag not found"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgDuplicateLink  = "ingredient is already linked to this recipe"

	// Recipe validation errors
	ErrMsgEmptyTags           = "at least one tag is required"
	ErrMsgDuplicateTag        = "tags must be unique"
	ErrMsgEmptyIngredients    = "at least one ingredient is required"
	ErrMsgDuplicateIngredient = "ingredients must be unique"
	ErrMsgInvalidAmount       = "ingredient amount must be between 1 and 32767"
	ErrMsgCookingTimeRange    = "cooking time must be between 1 and 1440 minutes"
	ErrMsgFieldRequired       = "this field is required"
	ErrMsgNameTooLong         = "name must be at most 200 characters"
	ErrMsgInvalidImage        = "image must be a valid base64 data URI or a reference"

	// Membership errors
	ErrMsgAlreadyExists      = "the recipe has already been added"
	ErrMsgMembershipNotFound = "the recipe is not in the list"
	ErrMsgInvalidMembership  = "invalid membership kind"
	ErrMsgValidationSummary  = "validation failed"

	// Database errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUnauthorized      = errors.New(ErrMsgUnauthorized)
	ErrForbidden         = errors.New(ErrMsgForbidden)
	ErrSelfFollow        = errors.New(ErrMsgSelfFollow)
	ErrAlreadySubscribed = errors.New(ErrMsgAlreadyFollow)
	ErrNotSubscribed     = errors.New(ErrMsgNotFollowing)

	// Catalog errors
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrTagNotFound        = errors.New(ErrMsgTagNotFound)

	// Recipe errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrDuplicateLink  = errors.New(ErrMsgDuplicateLink)

	// Recipe validation errors
	ErrEmptyTags           = errors.New(ErrMsgEmptyTags)
	ErrDuplicateTag        = errors.New(ErrMsgDuplicateTag)
	ErrEmptyIngredients    = errors.New(ErrMsgEmptyIngredients)
	ErrDuplicateIngredient = errors.New(ErrMsgDuplicateIngredient)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)
	ErrCookingTimeRange    = errors.New(ErrMsgCookingTimeRange)
	ErrFieldRequired       = errors.New(ErrMsgFieldRequired)
	ErrNameTooLong         = errors.New(ErrMsgNameTooLong)
	ErrInvalidImage        = errors.New(ErrMsgInvalidImage)

	// Membership errors
	ErrAlreadyExists         = errors.New(ErrMsgAlreadyExists)
	ErrMembershipNotFound    = errors.New(ErrMsgMembershipNotFound)
	ErrInvalidMembershipKind = errors.New(ErrMsgInvalidMembership)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ValidationError carries the first failure found for each field of a payload.
// Keys are the JSON field names of the payload.
type ValidationError struct {
	Fields map[string]error
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]error)}
}

// Add records err for field unless the field already failed.
func (v *ValidationError) Add(field string, err error) {
	if _, exists := v.Fields[field]; exists {
		return
	}
	v.Fields[field] = err
}

// Has reports whether field has a recorded failure
func (v *ValidationError) Has(field string) bool {
	_, ok := v.Fields[field]
	return ok
}

// Empty reports whether no field failed
func (v *ValidationError) Empty() bool {
	return len(v.Fields) == 0
}

// Messages returns field -> message, suitable for a response body
func (v *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(v.Fields))
	for field, err := range v.Fields {
		out[field] = err.Error()
	}
	return out
}

func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v.Fields[field].Error())
	}
	return ErrMsgValidationSummary + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is match any of the per-field sentinel errors.
func (v *ValidationError) Is(target error) bool {
	for _, err := range v.Fields {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
