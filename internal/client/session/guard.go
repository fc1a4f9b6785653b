package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sportlane/shopclient/internal/client/storage"
	"github.com/sportlane/shopclient/pkg/api"
)

// ErrSessionExpired is returned when the access token is stale and the
// refresh attempt failed. The session has already been cleared by the
// time a caller sees this error; it is the synthetic 401 of the client.
var ErrSessionExpired = errors.New("session expired")

// RefreshClient is the slice of the HTTP client the guard needs
type RefreshClient interface {
	RefreshToken(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
}

// Guard gates every authenticated request on credential freshness.
// Before a token is handed out, its expiry claim is checked; a stale
// token triggers a refresh exchange. Concurrent callers hitting a
// stale token at the same moment share a single in-flight refresh,
// so N parallel requests produce exactly one network call.
type Guard struct {
	client    RefreshClient
	creds     storage.AuthStorage
	state     *State
	threshold time.Duration
	logger    *slog.Logger
	group     singleflight.Group
}

// NewGuard creates a session guard with the default refresh threshold
func NewGuard(client RefreshClient, creds storage.AuthStorage, state *State, logger *slog.Logger) *Guard {
	return &Guard{
		client:    client,
		creds:     creds,
		state:     state,
		threshold: DefaultRefreshThreshold,
		logger:    logger,
	}
}

// Token returns an access token fresh enough to authorize a request,
// refreshing the pair first when needed. On refresh failure the whole
// session is terminated and ErrSessionExpired is returned.
func (g *Guard) Token(ctx context.Context) (string, error) {
	token := g.state.AccessToken()
	if token == "" {
		// Read-through: prime session state from storage on first use
		if auth, err := g.creds.GetAuth(ctx); err == nil {
			token = auth.AccessToken
			g.state.SetAccessToken(token)
		}
	}

	if !ShouldRefresh(token, g.threshold) {
		return token, nil
	}

	v, err, _ := g.group.Do("refresh", func() (interface{}, error) {
		return g.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Unauthorized handles a 401 that slipped past the pre-emptive check
// (clock skew, server-side revocation). The session is terminated.
func (g *Guard) Unauthorized(ctx context.Context) {
	g.logger.Warn("request rejected with 401, terminating session")
	g.terminate(ctx)
}

// refresh exchanges the refresh token for a new pair. Runs inside the
// single-flight group; callers that waited on an in-flight refresh
// re-enter here and return early on the fresh token.
func (g *Guard) refresh(ctx context.Context) (string, error) {
	if token := g.state.AccessToken(); !ShouldRefresh(token, g.threshold) {
		return token, nil
	}

	auth, err := g.creds.GetAuth(ctx)
	if err != nil {
		g.terminate(ctx)
		return "", fmt.Errorf("%w: no stored credentials: %v", ErrSessionExpired, err)
	}

	resp, err := g.client.RefreshToken(ctx, auth.RefreshToken)
	if err != nil {
		g.terminate(ctx)
		return "", fmt.Errorf("%w: refresh failed: %v", ErrSessionExpired, err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		g.terminate(ctx)
		return "", fmt.Errorf("%w: refresh returned an incomplete token pair", ErrSessionExpired)
	}

	// Replace the pair wholesale
	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	if exp, ok := TokenExpiry(resp.AccessToken); ok {
		auth.ExpiresAt = exp.Unix()
	} else {
		auth.ExpiresAt = 0
	}

	if err := g.creds.SaveAuth(ctx, auth); err != nil {
		// The in-memory pair is valid; persistence catches up next time
		g.logger.Warn("failed to persist refreshed credentials", "error", err)
	}

	g.state.SetAccessToken(resp.AccessToken)
	g.logger.Debug("access token refreshed", "expires_at", auth.ExpiresAt)

	return resp.AccessToken, nil
}

// terminate forces a logout: credentials dropped, session cleared
func (g *Guard) terminate(ctx context.Context) {
	if err := g.creds.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		g.logger.Warn("failed to delete stored credentials", "error", err)
	}
	g.state.Clear()
}
