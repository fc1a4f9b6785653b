package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportlane/shopclient/pkg/api"
)

// Favorites lists the user's favorite products
func (c *Client) Favorites(ctx context.Context) (*api.FavoritesResponse, error) {
	var resp api.FavoritesResponse
	if err := c.doAuthRequest(ctx, "GET", "/favorites", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("favorites request failed: %w", err)
	}
	return &resp, nil
}

// AddFavorite marks a product as favorite
func (c *Client) AddFavorite(ctx context.Context, productID string) error {
	path := "/favorites/" + url.PathEscape(productID)
	if err := c.doAuthRequest(ctx, "POST", path, nil, nil, nil); err != nil {
		return fmt.Errorf("add favorite request failed: %w", err)
	}
	return nil
}

// RemoveFavorite unmarks a favorite product
func (c *Client) RemoveFavorite(ctx context.Context, productID string) error {
	path := "/favorites/" + url.PathEscape(productID)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("remove favorite request failed: %w", err)
	}
	return nil
}
