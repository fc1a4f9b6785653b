package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportlane/shopclient/pkg/api"
)

func reviewsPath(productID string) string {
	return "/products/" + url.PathEscape(productID) + "/reviews"
}

// Reviews lists reviews of a product
func (c *Client) Reviews(ctx context.Context, productID string, q api.PageQuery) (*api.ReviewsResponse, error) {
	var resp api.ReviewsResponse
	if err := c.doAuthRequest(ctx, "GET", reviewsPath(productID), q.Values(), nil, &resp); err != nil {
		return nil, fmt.Errorf("reviews request failed: %w", err)
	}
	return &resp, nil
}

// CreateReview posts a review for a product
func (c *Client) CreateReview(ctx context.Context, productID string, req api.CreateReviewRequest) (*api.Review, error) {
	var resp api.Review
	if err := c.doAuthRequest(ctx, "POST", reviewsPath(productID), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create review request failed: %w", err)
	}
	return &resp, nil
}

// UpdateReview edits the user's own review
func (c *Client) UpdateReview(ctx context.Context, productID, reviewID string, req api.UpdateReviewRequest) (*api.Review, error) {
	var resp api.Review
	path := reviewsPath(productID) + "/" + url.PathEscape(reviewID)
	if err := c.doAuthRequest(ctx, "PATCH", path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update review request failed: %w", err)
	}
	return &resp, nil
}

// DeleteReview removes the user's own review
func (c *Client) DeleteReview(ctx context.Context, productID, reviewID string) error {
	path := reviewsPath(productID) + "/" + url.PathEscape(reviewID)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete review request failed: %w", err)
	}
	return nil
}
