package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for request payloads.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest runs struct validation over a decoded payload.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}

// validationMessage turns a validator error into a short, field-oriented
// message such as "Email is required", without leaking struct internals.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return "Invalid request payload"
}

// decodeAndValidate parses the request body into v and validates it,
// writing the 400 response itself on failure. Returns false when the
// handler should stop.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := DecodeJSON(r, v); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := ValidateRequest(v); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter, returning fallback
// when absent or malformed.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
