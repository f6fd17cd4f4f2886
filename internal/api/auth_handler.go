package api

import (
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phrazzld/portico-api/internal/api/shared"
	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	auth   gateway.Auth
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(auth gateway.Auth, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, session, err := h.auth.SignUp(r.Context(), req.Email, req.Password, req.Metadata)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	fields := shared.Envelope{"user": user}
	if session != nil {
		fields["session"] = session
	}
	RespondWithSuccess(w, r, fields)
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, session, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"user": user, "session": session})
}

// SignOut handles POST /auth/signout. The access token may come from the
// request body or from the Authorization header.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var req SignOutRequest
	// The body is optional when the header carries the token.
	_ = DecodeJSON(r, &req)

	token := req.AccessToken
	if token == "" {
		token = shared.GetAccessToken(r.Context())
	}
	if token == "" {
		RespondWithError(w, r, http.StatusBadRequest, "access_token is required")
		return
	}

	if err := h.auth.SignOut(r.Context(), token); err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, nil)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Email); err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, nil)
}

// GetUser handles GET /auth/user.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireToken(w, r)
	if !ok {
		return
	}

	user, err := h.auth.GetUser(r.Context(), token)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"user": user})
}

// UpdatePassword handles PUT /auth/user.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireToken(w, r)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.auth.UpdatePassword(r.Context(), token, req.Password)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"user": user})
}

// GetSession handles GET /auth/session. The provider is the source of
// truth for token validity; the expiry claim is decoded locally without
// verification purely to surface expires_at to the client.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireToken(w, r)
	if !ok {
		return
	}

	user, err := h.auth.VerifyToken(r.Context(), token)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	session := domain.Session{AccessToken: token, TokenType: "bearer", User: user}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			session.ExpiresAt = exp.Time
		}
	}

	RespondWithSuccess(w, r, shared.Envelope{"session": session})
}

// requireToken fetches the bearer token from the context, writing the 401
// response itself when the request carried none.
func (h *AuthHandler) requireToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := shared.GetAccessToken(r.Context())
	if token == "" {
		RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
		return "", false
	}
	return token, true
}
