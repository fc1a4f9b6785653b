package api

import (
	"net/url"
	"strconv"
	"time"
)

// Product is a catalog entry
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OldPrice      *float64  `json:"oldPrice,omitempty"`
	Images        []string  `json:"images"`
	CategoryID    string    `json:"categoryId"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	InStock       bool      `json:"inStock"`
	StockQuantity *int      `json:"stockQuantity,omitempty"`
	Sizes         []string  `json:"sizes,omitempty"`
	Colors        []string  `json:"colors,omitempty"`
	Brand         *string   `json:"brand,omitempty"`
	SKU           string    `json:"sku"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductsResponse is a paginated product list
type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

// ProductsQuery holds the supported product list filters.
// Zero values are omitted from the query string.
type ProductsQuery struct {
	CategoryID string
	Search     string
	MinPrice   float64
	MaxPrice   float64
	InStock    *bool
	SortBy     string // price, rating, name, createdAt, reviewCount
	SortOrder  string // asc, desc
	Limit      int
	Offset     int
}

// Values encodes the query as URL parameters
func (q ProductsQuery) Values() url.Values {
	v := url.Values{}
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.InStock != nil {
		v.Set("inStock", strconv.FormatBool(*q.InStock))
	}
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

// Signature returns a canonical form of the query, used as the list
// cache key. url.Values.Encode sorts keys, so equal queries always
// produce equal signatures.
func (q ProductsQuery) Signature() string {
	return q.Values().Encode()
}

// CreateProductRequest is the payload for POST /products
type CreateProductRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OldPrice      *float64 `json:"oldPrice,omitempty"`
	Images        []string `json:"images"`
	CategoryID    string   `json:"categoryId"`
	InStock       *bool    `json:"inStock,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	SKU           string   `json:"sku"`
}

// UpdateProductRequest is the payload for PATCH /products/{id}.
// Nil fields are left unchanged by the backend.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OldPrice      *float64 `json:"oldPrice,omitempty"`
	Images        []string `json:"images,omitempty"`
	CategoryID    *string  `json:"categoryId,omitempty"`
	InStock       *bool    `json:"inStock,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	SKU           *string  `json:"sku,omitempty"`
}
