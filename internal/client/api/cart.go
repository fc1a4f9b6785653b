package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportlane/shopclient/pkg/api"
)

// Cart fetches the user's cart
func (c *Client) Cart(ctx context.Context) (*api.Cart, error) {
	var resp api.Cart
	if err := c.doAuthRequest(ctx, "GET", "/cart", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("cart request failed: %w", err)
	}
	return &resp, nil
}

// AddCartItem puts a product into the cart
func (c *Client) AddCartItem(ctx context.Context, req api.AddCartItemRequest) (*api.CartItem, error) {
	var resp api.CartItem
	if err := c.doAuthRequest(ctx, "POST", "/cart", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("add cart item request failed: %w", err)
	}
	return &resp, nil
}

// UpdateCartItem changes the quantity of a cart position
func (c *Client) UpdateCartItem(ctx context.Context, id string, req api.UpdateCartItemRequest) (*api.CartItem, error) {
	var resp api.CartItem
	path := "/cart/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "PATCH", path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update cart item request failed: %w", err)
	}
	return &resp, nil
}

// RemoveCartItem deletes one cart position
func (c *Client) RemoveCartItem(ctx context.Context, id string) error {
	path := "/cart/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("remove cart item request failed: %w", err)
	}
	return nil
}

// ClearCart empties the cart
func (c *Client) ClearCart(ctx context.Context) error {
	if err := c.doAuthRequest(ctx, "DELETE", "/cart", nil, nil, nil); err != nil {
		return fmt.Errorf("clear cart request failed: %w", err)
	}
	return nil
}
