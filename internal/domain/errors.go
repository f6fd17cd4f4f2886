// Package domain defines the core entities the gateway moves between
// the HTTP surface and the provider SDKs.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request payload fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownOperator is returned when a filter descriptor names an
	// operator the gateway does not support. Unknown operators are
	// rejected loudly rather than silently skipped.
	ErrUnknownOperator = errors.New("unknown filter operator")
)
