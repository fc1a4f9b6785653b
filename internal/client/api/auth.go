package api

import (
	"context"
	"fmt"

	"github.com/sportlane/shopclient/pkg/api"
)

// SignIn authenticates with email and password
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*api.SignInResponse, error) {
	var resp api.SignInResponse
	if err := c.doRequest(ctx, "POST", "/auth/login", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	return &resp, nil
}

// SignUp registers a new account
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
	var resp api.SignUpResponse
	if err := c.doRequest(ctx, "POST", "/auth/sign-up", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("sign-up request failed: %w", err)
	}
	return &resp, nil
}

// SignOut invalidates the session server-side
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.doAuthRequest(ctx, "POST", "/auth/sign-out", nil, nil, nil); err != nil {
		return fmt.Errorf("sign-out request failed: %w", err)
	}
	return nil
}

// RefreshToken exchanges the refresh token for a new pair. The refresh
// token is sent as the bearer credential, not a body field; that is
// the backend's contract.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doTokenRequest(ctx, "POST", "/auth/new-access-token", refreshToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Profile fetches the authenticated user's profile
func (c *Client) Profile(ctx context.Context) (*api.MeResponse, error) {
	var resp api.MeResponse
	if err := c.doAuthRequest(ctx, "GET", "/profile", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile updates the authenticated user's profile
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.MeResponse, error) {
	var resp api.MeResponse
	if err := c.doAuthRequest(ctx, "POST", "/profile/update", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}
