package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportlane/shopclient/pkg/api"
)

// Orders lists the user's orders
func (c *Client) Orders(ctx context.Context) ([]api.Order, error) {
	var resp []api.Order
	if err := c.doAuthRequest(ctx, "GET", "/orders", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("orders request failed: %w", err)
	}
	return resp, nil
}

// Order fetches one order by id
func (c *Client) Order(ctx context.Context, id string) (*api.Order, error) {
	var resp api.Order
	path := "/orders/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "GET", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	return &resp, nil
}

// CreateOrder places an order from the current cart
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error) {
	var resp api.Order
	if err := c.doAuthRequest(ctx, "POST", "/orders", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create order request failed: %w", err)
	}
	return &resp, nil
}
