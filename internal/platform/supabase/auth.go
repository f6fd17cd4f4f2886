package supabase

import (
	"context"
	"log/slog"

	"github.com/supabase-community/gotrue-go/types"

	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// AuthGateway implements gateway.Auth over the provider's gotrue API.
// Every operation is a single provider round-trip with no local retry;
// failures are classified and propagated for the endpoint layer to map.
type AuthGateway struct {
	provider *Provider
	logger   *slog.Logger
}

// NewAuthGateway creates an AuthGateway using the given provider.
func NewAuthGateway(provider *Provider, logger *slog.Logger) *AuthGateway {
	return &AuthGateway{provider: provider, logger: logger}
}

var _ gateway.Auth = (*AuthGateway)(nil)

// SignUp registers a new user with optional metadata.
func (g *AuthGateway) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.User, *domain.Session, error) {
	auth, err := g.provider.Auth("")
	if err != nil {
		return nil, nil, err
	}

	resp, err := auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "sign up failed", "error", err)
		return nil, nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}

	user := mapUser(resp.User)

	// Depending on provider settings (email confirmation), sign-up may or
	// may not issue a session.
	var session *domain.Session
	if resp.AccessToken != "" {
		session = &domain.Session{
			AccessToken:  resp.AccessToken,
			TokenType:    resp.TokenType,
			RefreshToken: resp.RefreshToken,
			ExpiresIn:    resp.ExpiresIn,
			User:         user,
		}
	}

	g.logger.InfoContext(ctx, "user signed up", "user_id", user.ID, "session_issued", session != nil)
	return user, session, nil
}

// SignIn exchanges email/password credentials for a session.
func (g *AuthGateway) SignIn(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	auth, err := g.provider.Auth("")
	if err != nil {
		return nil, nil, err
	}

	resp, err := auth.SignInWithEmailPassword(email, password)
	if err != nil {
		g.logger.WarnContext(ctx, "sign in failed", "error", err)
		return nil, nil, gateway.WrapProvider(gateway.ErrAuthentication, err)
	}

	user := mapUser(resp.User)
	session := &domain.Session{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		User:         user,
	}

	g.logger.InfoContext(ctx, "user signed in", "user_id", user.ID)
	return user, session, nil
}

// SignOut revokes the session behind the access token.
func (g *AuthGateway) SignOut(ctx context.Context, token string) error {
	auth, err := g.provider.Auth(token)
	if err != nil {
		return err
	}

	if err := auth.Logout(); err != nil {
		g.logger.WarnContext(ctx, "sign out failed", "error", err)
		return gateway.WrapProvider(gateway.ErrAuthentication, err)
	}
	return nil
}

// ResetPassword sends a password-reset email.
func (g *AuthGateway) ResetPassword(ctx context.Context, email string) error {
	auth, err := g.provider.Auth("")
	if err != nil {
		return err
	}

	if err := auth.Recover(types.RecoverRequest{Email: email}); err != nil {
		g.logger.ErrorContext(ctx, "password reset failed", "error", err)
		return gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return nil
}

// UpdatePassword sets a new password for the user behind the token.
func (g *AuthGateway) UpdatePassword(ctx context.Context, token, newPassword string) (*domain.User, error) {
	auth, err := g.provider.Auth(token)
	if err != nil {
		return nil, err
	}

	resp, err := auth.UpdateUser(types.UpdateUserRequest{Password: &newPassword})
	if err != nil {
		g.logger.WarnContext(ctx, "password update failed", "error", err)
		return nil, gateway.WrapProvider(gateway.ErrAuthentication, err)
	}
	return mapUser(resp.User), nil
}

// GetUser resolves the user behind the access token.
func (g *AuthGateway) GetUser(ctx context.Context, token string) (*domain.User, error) {
	auth, err := g.provider.Auth(token)
	if err != nil {
		return nil, err
	}

	resp, err := auth.GetUser()
	if err != nil {
		g.logger.WarnContext(ctx, "get user failed", "error", err)
		return nil, gateway.WrapProvider(gateway.ErrAuthentication, err)
	}
	return mapUser(resp.User), nil
}

// VerifyToken is a thin semantic alias for GetUser: the token is valid
// exactly when the provider can resolve a user for it.
func (g *AuthGateway) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	user, err := g.GetUser(ctx, token)
	if err != nil {
		return nil, gateway.NewError(gateway.ErrAuthentication, "Invalid or expired token")
	}
	return user, nil
}

// mapUser converts the SDK's user shape into the domain type.
func mapUser(u types.User) *domain.User {
	return &domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Metadata:  u.UserMetadata,
		CreatedAt: u.CreatedAt,
	}
}
