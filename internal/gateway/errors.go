package gateway

import "errors"

// Sentinel error kinds every gateway classifies its failures into. The
// endpoint layer maps these to HTTP status codes in exactly one place.
var (
	// ErrMissingConfig is returned when the Supabase URL or key is absent,
	// making any provider call impossible.
	ErrMissingConfig = errors.New("supabase configuration missing")

	// ErrAuthentication is returned for credential and token failures:
	// bad sign-in credentials, expired or invalid access tokens.
	ErrAuthentication = errors.New("authentication failed")

	// ErrProvider is returned for any other downstream SDK failure.
	ErrProvider = errors.New("provider error")
)

// Error carries a provider failure with a classified kind and the
// provider's message preserved verbatim. Passing the message through
// unchanged is a deliberate transparency choice for the frontend client.
type Error struct {
	Kind    error
	Message string
}

// Error implements the error interface, returning the verbatim provider
// message.
func (e *Error) Error() string { return e.Message }

// Unwrap exposes the kind so callers can classify with errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// NewError builds a classified gateway error around a verbatim message.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapProvider classifies err under the given kind, keeping its message.
// Returns nil when err is nil.
func WrapProvider(kind error, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: err.Error()}
}
