package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sportlane/shopclient/internal/client/session"
	"github.com/sportlane/shopclient/internal/client/storage"
	"github.com/sportlane/shopclient/pkg/api"
)

// API is the slice of the HTTP client the auth service needs
type API interface {
	SignIn(ctx context.Context, req api.SignInRequest) (*api.SignInResponse, error)
	SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error)
	SignOut(ctx context.Context) error
	Profile(ctx context.Context) (*api.MeResponse, error)
}

// Service orchestrates sign-in, sign-up and sign-out: it calls the
// backend, persists the credential pair and keeps session state in
// step. It is, together with the guard, the only writer of both.
type Service struct {
	client API
	creds  storage.AuthStorage
	state  *session.State
	logger *slog.Logger
}

// NewService creates the auth service
func NewService(client API, creds storage.AuthStorage, state *session.State, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		creds:  creds,
		state:  state,
		logger: logger,
	}
}

// SignIn authenticates the user, persists the token pair and
// transitions session state to authenticated
func (s *Service) SignIn(ctx context.Context, email, password string) (*api.UserProfile, error) {
	resp, err := s.client.SignIn(ctx, api.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}

	user := resp.User.Profile
	if user.Email == "" {
		user.Email = email
	}

	auth := &storage.AuthData{
		UserID:       user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		DeviceID:     s.getOrCreateDeviceID(ctx),
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if exp, ok := session.TokenExpiry(resp.AccessToken); ok {
		auth.ExpiresAt = exp.Unix()
	}

	if err := s.creds.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	s.state.SetCredentials(&user, resp.AccessToken)
	return &user, nil
}

// SignUpParams are the fields collected for registration
type SignUpParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// SignUp registers a new account and signs the user in
func (s *Service) SignUp(ctx context.Context, params SignUpParams) error {
	resp, err := s.client.SignUp(ctx, api.SignUpRequest{
		Email:     params.Email,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	})
	if err != nil {
		return fmt.Errorf("sign-up failed: %w", err)
	}

	user := api.UserProfile{
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}

	auth := &storage.AuthData{
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		DeviceID:     s.getOrCreateDeviceID(ctx),
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if exp, ok := session.TokenExpiry(resp.AccessToken); ok {
		auth.ExpiresAt = exp.Unix()
	}

	if err := s.creds.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	s.state.SetCredentials(&user, resp.AccessToken)
	return nil
}

// SignOut clears the session. The server is notified best-effort: a
// failing round trip is logged and the local state is cleared anyway.
func (s *Service) SignOut(ctx context.Context) error {
	if s.state.IsAuthenticated() {
		if err := s.client.SignOut(ctx); err != nil {
			s.logger.Warn("failed to sign out on server", "error", err)
		}
	}

	if err := s.creds.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local credentials: %w", err)
	}

	s.state.Clear()
	return nil
}

// Restore primes session state from storage on startup. Returns true
// when a usable session was found; expiry of the access token is not
// checked here, the guard refreshes on first use.
func (s *Service) Restore(ctx context.Context) (bool, error) {
	auth, err := s.creds.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load credentials: %w", err)
	}

	user := &api.UserProfile{
		ID:        auth.UserID,
		Email:     auth.Email,
		FirstName: auth.FirstName,
		LastName:  auth.LastName,
	}
	s.state.SetCredentials(user, auth.AccessToken)
	return true, nil
}

// Profile fetches the profile and refreshes the session snapshot
func (s *Service) Profile(ctx context.Context) (*api.MeResponse, error) {
	me, err := s.client.Profile(ctx)
	if err != nil {
		return nil, err
	}

	snap := s.state.Snapshot()
	user := &api.UserProfile{ID: me.ID, Email: me.Email, AvatarURL: me.Avatar}
	if snap.User != nil {
		user.FirstName = snap.User.FirstName
		user.LastName = snap.User.LastName
	}
	s.state.SetUser(user)

	return me, nil
}

// getOrCreateDeviceID returns the stored device id or generates a new
// one. The id survives re-login on the same device.
func (s *Service) getOrCreateDeviceID(ctx context.Context) string {
	auth, err := s.creds.GetAuth(ctx)
	if err == nil && auth.DeviceID != "" {
		return auth.DeviceID
	}
	return uuid.New().String()
}
