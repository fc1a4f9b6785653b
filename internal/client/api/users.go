package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportlane/shopclient/pkg/api"
)

// UpdateUser replaces a user's editable fields
func (c *Client) UpdateUser(ctx context.Context, id string, req api.UpdateUserRequest) (*api.UserProfile, error) {
	var resp api.UserProfile
	path := "/users/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "PUT", path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &resp, nil
}

// DeleteUser removes a user account
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	path := "/users/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete user request failed: %w", err)
	}
	return nil
}
