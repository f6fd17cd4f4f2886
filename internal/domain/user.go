package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the provider-owned identity this gateway passes through.
// It never persists users itself.
type User struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Role      string         `json:"role,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
}

// Session is the provider-issued token bundle returned on sign-in and,
// depending on provider settings, on sign-up.
type Session struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int       `json:"expires_in,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	User         *User     `json:"user,omitempty"`
}
