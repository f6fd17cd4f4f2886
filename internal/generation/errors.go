package generation

import "errors"

// Common errors returned by generators.
var (
	// ErrGenerationFailed is returned when the provider call fails; the
	// wrapped message carries the provider's error text.
	ErrGenerationFailed = errors.New("failed to generate completion")

	// ErrInvalidResponse is returned when the provider response is empty
	// or malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyPrompt is returned when the prompt is empty.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
