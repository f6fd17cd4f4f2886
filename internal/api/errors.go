package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/portico-api/internal/api/shared"
	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// RespondWithError re-exports the shared envelope writer so handlers in
// this package read naturally.
var RespondWithError = shared.RespondWithError

// RespondWithSuccess re-exports the shared envelope writer.
var RespondWithSuccess = shared.RespondWithSuccess

// MapErrorToStatusCode maps gateway and domain errors to HTTP status
// codes. This is the single place the error taxonomy turns into statuses.
func MapErrorToStatusCode(err error) int {
	switch {
	// Malformed request content detected before any provider call.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownOperator):
		return http.StatusBadRequest

	// Credential and token failures.
	case errors.Is(err, gateway.ErrAuthentication):
		return http.StatusUnauthorized

	// Missing provider configuration and downstream failures. Config
	// errors surface on first use rather than at startup, so they map to
	// a server error here.
	case errors.Is(err, gateway.ErrMissingConfig),
		errors.Is(err, gateway.ErrProvider):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// HandleGatewayError writes the failure envelope for a gateway error. The
// message is the error text verbatim — passing provider messages through
// unchanged is a deliberate transparency choice for the frontend.
func HandleGatewayError(w http.ResponseWriter, r *http.Request, err error) {
	RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
}
