package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors forming the service error taxonomy. Handlers map these onto
// the HTTP status/body contract; the raw underlying errors stay server-side.
var (
	// ErrNotFound signals a lookup for an ID that is not in the store.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken signals a CreateUser call with a username that already
	// exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrAPIKeyMissing signals that no Gemini credential is configured.
	ErrAPIKeyMissing = errors.New("API_KEY_MISSING")

	// ErrInvalidAPIKey signals a provider-reported authentication failure.
	ErrInvalidAPIKey = errors.New("INVALID_API_KEY")

	// ErrEmptyResponse signals that the provider returned no text at all.
	ErrEmptyResponse = errors.New("empty response from Gemini API")

	// ErrMalformedResponse signals that the provider text was not valid JSON,
	// or that the itineraries field was missing or empty.
	ErrMalformedResponse = errors.New("invalid response structure from Gemini API")

	// ErrGenerationFailed is the generic failure for any other problem during
	// generation.
	ErrGenerationFailed = errors.New("failed to generate itineraries")
)

// ValidationError reports an entity record that failed schema validation
// before entering the store.
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: missing or invalid fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// NewValidationError builds a ValidationError for the given entity and field
// names.
func NewValidationError(entity string, fields ...string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: fields}
}
