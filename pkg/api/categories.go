package api

// Category is a product category
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// CategoriesResponse is returned by GET /categories
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// CreateCategoryRequest is the payload for POST /categories
type CreateCategoryRequest struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// UpdateCategoryRequest is the payload for PATCH /categories/{id}
type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty"`
	Slug     *string `json:"slug,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}
