package api

import (
	"github.com/phrazzld/portico-api/internal/domain"
)

// Request payloads. Required-field presence is enforced with validator
// tags; everything else is passed through to the gateways.

// SignUpRequest defines the payload for POST /auth/signup.
type SignUpRequest struct {
	Email    string         `json:"email"    validate:"required,email"`
	Password string         `json:"password" validate:"required"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SignInRequest defines the payload for POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignOutRequest defines the payload for POST /auth/signout. The token
// may come from the body or from the Authorization header.
type SignOutRequest struct {
	AccessToken string `json:"access_token,omitempty"`
}

// ResetPasswordRequest defines the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePasswordRequest defines the payload for PUT /auth/user.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// InsertRequest defines the payload for POST /data. Data may hold one
// record or a batch.
type InsertRequest struct {
	Table string `json:"table" validate:"required"`
	Data  any    `json:"data"  validate:"required"`
}

// UpdateRequest defines the payload for PUT /data. Rows are matched by
// single-column equality: either id, or an explicit match_column plus
// match_value.
type UpdateRequest struct {
	Table       string         `json:"table" validate:"required"`
	Data        map[string]any `json:"data"  validate:"required"`
	ID          any            `json:"id,omitempty"`
	MatchColumn string         `json:"match_column,omitempty"`
	MatchValue  any            `json:"match_value,omitempty"`
}

// DeleteRequest defines the payload for DELETE /data, with the same
// single-column match rules as UpdateRequest.
type DeleteRequest struct {
	Table       string `json:"table" validate:"required"`
	ID          any    `json:"id,omitempty"`
	MatchColumn string `json:"match_column,omitempty"`
	MatchValue  any    `json:"match_value,omitempty"`
}

// QueryRequest defines the payload for POST /data/query.
type QueryRequest struct {
	Table       string              `json:"table"        validate:"required"`
	QueryParams *domain.QueryParams `json:"query_params" validate:"required"`
}

// RPCRequest defines the payload for POST /data/rpc.
type RPCRequest struct {
	Function string         `json:"function" validate:"required"`
	Params   map[string]any `json:"params,omitempty"`
}

// ProcessRequest defines the payload for POST /process. Service defaults
// to the orchestrator's default when empty.
type ProcessRequest struct {
	Query     string `json:"query" validate:"required"`
	Service   string `json:"service,omitempty"`
	Model     string `json:"model,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}
