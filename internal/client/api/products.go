package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportlane/shopclient/pkg/api"
)

// Products lists catalog products matching the query
func (c *Client) Products(ctx context.Context, q api.ProductsQuery) (*api.ProductsResponse, error) {
	var resp api.ProductsResponse
	if err := c.doAuthRequest(ctx, "GET", "/products", q.Values(), nil, &resp); err != nil {
		return nil, fmt.Errorf("products request failed: %w", err)
	}
	return &resp, nil
}

// Product fetches one product by id
func (c *Client) Product(ctx context.Context, id string) (*api.Product, error) {
	var resp api.Product
	path := "/products/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "GET", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("product request failed: %w", err)
	}
	return &resp, nil
}

// CreateProduct adds a product to the catalog
func (c *Client) CreateProduct(ctx context.Context, req api.CreateProductRequest) (*api.Product, error) {
	var resp api.Product
	if err := c.doAuthRequest(ctx, "POST", "/products", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProduct partially updates a product
func (c *Client) UpdateProduct(ctx context.Context, id string, req api.UpdateProductRequest) (*api.Product, error) {
	var resp api.Product
	path := "/products/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "PATCH", path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	return &resp, nil
}

// DeleteProduct removes a product from the catalog
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	path := "/products/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	return nil
}
