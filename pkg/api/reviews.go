package api

import (
	"net/url"
	"strconv"
	"time"
)

// Review is a product review
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewsResponse is a paginated review list
type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// PageQuery holds plain pagination and sort parameters
type PageQuery struct {
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Values encodes the query as URL parameters
func (q PageQuery) Values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

// Signature returns the canonical list cache key for the query
func (q PageQuery) Signature() string {
	return q.Values().Encode()
}

// CreateReviewRequest is the payload for POST /products/{id}/reviews
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest is the payload for PATCH /products/{id}/reviews/{reviewId}
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}
