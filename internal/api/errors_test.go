package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "Validation Error",
			err:      fmt.Errorf("%w: filter column is required", domain.ErrValidation),
			expected: http.StatusBadRequest,
		},
		{
			name:     "Unknown Operator",
			err:      fmt.Errorf("%w: %q", domain.ErrUnknownOperator, "between"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "Authentication Failure",
			err:      gateway.NewError(gateway.ErrAuthentication, "Invalid login credentials"),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Missing Configuration",
			err:      gateway.NewError(gateway.ErrMissingConfig, "Supabase URL or key is missing"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Provider Failure",
			err:      gateway.NewError(gateway.ErrProvider, "duplicate key"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Unclassified Error",
			err:      errors.New("something unexpected"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestHandleGatewayErrorWritesVerbatimMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/data", nil)

	HandleGatewayError(rr, req, gateway.NewError(gateway.ErrAuthentication, "Invalid login credentials"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Invalid login credentials", envelope["error"])
}
