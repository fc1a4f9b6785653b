package storage

import (
	"context"
)

// AuthStorage defines the interface for the persisted credential pair.
// It is the only writer-facing surface the session guard talks to; the
// pair is always replaced wholesale, never field by field.
type AuthStorage interface {
	// SaveAuth stores the credential pair, replacing any previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored credential pair.
	// Returns ErrAuthNotFound if no credentials exist.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored credentials (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated reports whether non-expired credentials exist
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData is the persisted session: the token pair plus enough user
// context to restore session state on startup without a network call.
type AuthData struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DeviceID     string `json:"device_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds, 0 if unknown
}
