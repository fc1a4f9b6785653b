package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportlane/shopclient/pkg/api"
)

// Categories lists all product categories
func (c *Client) Categories(ctx context.Context) (*api.CategoriesResponse, error) {
	var resp api.CategoriesResponse
	if err := c.doAuthRequest(ctx, "GET", "/categories", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("categories request failed: %w", err)
	}
	return &resp, nil
}

// Category fetches one category by id
func (c *Client) Category(ctx context.Context, id string) (*api.Category, error) {
	var resp api.Category
	path := "/categories/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "GET", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("category request failed: %w", err)
	}
	return &resp, nil
}

// CreateCategory adds a category
func (c *Client) CreateCategory(ctx context.Context, req api.CreateCategoryRequest) (*api.Category, error) {
	var resp api.Category
	if err := c.doAuthRequest(ctx, "POST", "/categories", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create category request failed: %w", err)
	}
	return &resp, nil
}

// UpdateCategory partially updates a category
func (c *Client) UpdateCategory(ctx context.Context, id string, req api.UpdateCategoryRequest) (*api.Category, error) {
	var resp api.Category
	path := "/categories/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "PATCH", path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update category request failed: %w", err)
	}
	return &resp, nil
}

// DeleteCategory removes a category
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	path := "/categories/" + url.PathEscape(id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete category request failed: %w", err)
	}
	return nil
}
