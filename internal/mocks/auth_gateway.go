package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// MockAuthGateway implements gateway.Auth for testing
type MockAuthGateway struct {
	// Custom behavior functions
	SignUpFn         func(ctx context.Context, email, password string, metadata map[string]any) (*domain.User, *domain.Session, error)
	SignInFn         func(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	SignOutFn        func(ctx context.Context, accessToken string) error
	ResetPasswordFn  func(ctx context.Context, email string) error
	UpdatePasswordFn func(ctx context.Context, accessToken, newPassword string) (*domain.User, error)
	GetUserFn        func(ctx context.Context, accessToken string) (*domain.User, error)
	VerifyTokenFn    func(ctx context.Context, accessToken string) (*domain.User, error)

	// Default response values
	User    *domain.User
	Session *domain.Session
	Err     error

	// Call tracking for verification
	SignUpCalls struct {
		mu        sync.Mutex
		Count     int
		Emails    []string
		Passwords []string
		Metadata  []map[string]any
	}

	SignInCalls struct {
		mu        sync.Mutex
		Count     int
		Emails    []string
		Passwords []string
	}

	SignOutCalls struct {
		mu     sync.Mutex
		Count  int
		Tokens []string
	}

	ResetPasswordCalls struct {
		mu     sync.Mutex
		Count  int
		Emails []string
	}

	UpdatePasswordCalls struct {
		mu        sync.Mutex
		Count     int
		Tokens    []string
		Passwords []string
	}

	GetUserCalls struct {
		mu     sync.Mutex
		Count  int
		Tokens []string
	}

	VerifyTokenCalls struct {
		mu     sync.Mutex
		Count  int
		Tokens []string
	}
}

var _ gateway.Auth = (*MockAuthGateway)(nil)

// SignUp implements the gateway.Auth interface
func (m *MockAuthGateway) SignUp(
	ctx context.Context,
	email, password string,
	metadata map[string]any,
) (*domain.User, *domain.Session, error) {
	m.SignUpCalls.mu.Lock()
	m.SignUpCalls.Count++
	m.SignUpCalls.Emails = append(m.SignUpCalls.Emails, email)
	m.SignUpCalls.Passwords = append(m.SignUpCalls.Passwords, password)
	m.SignUpCalls.Metadata = append(m.SignUpCalls.Metadata, metadata)
	m.SignUpCalls.mu.Unlock()

	if m.SignUpFn != nil {
		return m.SignUpFn(ctx, email, password, metadata)
	}
	return m.User, m.Session, m.Err
}

// SignIn implements the gateway.Auth interface
func (m *MockAuthGateway) SignIn(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	m.SignInCalls.mu.Lock()
	m.SignInCalls.Count++
	m.SignInCalls.Emails = append(m.SignInCalls.Emails, email)
	m.SignInCalls.Passwords = append(m.SignInCalls.Passwords, password)
	m.SignInCalls.mu.Unlock()

	if m.SignInFn != nil {
		return m.SignInFn(ctx, email, password)
	}
	return m.User, m.Session, m.Err
}

// SignOut implements the gateway.Auth interface
func (m *MockAuthGateway) SignOut(ctx context.Context, accessToken string) error {
	m.SignOutCalls.mu.Lock()
	m.SignOutCalls.Count++
	m.SignOutCalls.Tokens = append(m.SignOutCalls.Tokens, accessToken)
	m.SignOutCalls.mu.Unlock()

	if m.SignOutFn != nil {
		return m.SignOutFn(ctx, accessToken)
	}
	return m.Err
}

// ResetPassword implements the gateway.Auth interface
func (m *MockAuthGateway) ResetPassword(ctx context.Context, email string) error {
	m.ResetPasswordCalls.mu.Lock()
	m.ResetPasswordCalls.Count++
	m.ResetPasswordCalls.Emails = append(m.ResetPasswordCalls.Emails, email)
	m.ResetPasswordCalls.mu.Unlock()

	if m.ResetPasswordFn != nil {
		return m.ResetPasswordFn(ctx, email)
	}
	return m.Err
}

// UpdatePassword implements the gateway.Auth interface
func (m *MockAuthGateway) UpdatePassword(ctx context.Context, accessToken, newPassword string) (*domain.User, error) {
	m.UpdatePasswordCalls.mu.Lock()
	m.UpdatePasswordCalls.Count++
	m.UpdatePasswordCalls.Tokens = append(m.UpdatePasswordCalls.Tokens, accessToken)
	m.UpdatePasswordCalls.Passwords = append(m.UpdatePasswordCalls.Passwords, newPassword)
	m.UpdatePasswordCalls.mu.Unlock()

	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, accessToken, newPassword)
	}
	return m.User, m.Err
}

// GetUser implements the gateway.Auth interface
func (m *MockAuthGateway) GetUser(ctx context.Context, accessToken string) (*domain.User, error) {
	m.GetUserCalls.mu.Lock()
	m.GetUserCalls.Count++
	m.GetUserCalls.Tokens = append(m.GetUserCalls.Tokens, accessToken)
	m.GetUserCalls.mu.Unlock()

	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, accessToken)
	}
	return m.User, m.Err
}

// VerifyToken implements the gateway.Auth interface
func (m *MockAuthGateway) VerifyToken(ctx context.Context, accessToken string) (*domain.User, error) {
	m.VerifyTokenCalls.mu.Lock()
	m.VerifyTokenCalls.Count++
	m.VerifyTokenCalls.Tokens = append(m.VerifyTokenCalls.Tokens, accessToken)
	m.VerifyTokenCalls.mu.Unlock()

	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, accessToken)
	}
	return m.User, m.Err
}
