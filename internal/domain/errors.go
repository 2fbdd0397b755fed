package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrNoAPIKey        = errors.New("api key is not configured")
	ErrInvalidResponse = errors.New("invalid response from generation api")
	ErrNoAdministrator = errors.New("no administrator available")
	ErrNetwork         = errors.New("network error")
	ErrInvalidInput    = errors.New("invalid input")
)

// NotPublicMessage is returned to public callers for missing and non-public records alike.
const NotPublicMessage = "Post not found or not publicly accessible"

type ErrorKind string

const (
	KindGeneric             ErrorKind = "generic"
	KindInsufficientCredits ErrorKind = "insufficient_credits"
)

// CreditsExhaustedCode is the marker the generation api uses when the account is out of credits.
const CreditsExhaustedCode = "NOT_ENOUGH_CREDITS"

// APIError is an error reported by the generation api itself.
type APIError struct {
	Message string
	Kind    ErrorKind
}

func NewAPIError(message string) *APIError {
	kind := KindGeneric
	if message == CreditsExhaustedCode || strings.Contains(message, CreditsExhaustedCode) {
		kind = KindInsufficientCredits
	}
	return &APIError{Message: message, Kind: kind}
}

func (e *APIError) Error() string {
	return e.Message
}

// IsInsufficientCredits reports whether err carries an APIError of the credits kind.
func IsInsufficientCredits(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == KindInsufficientCredits
	}
	return false
}
