package api

// CartItem is one position in the user's cart
type CartItem struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Size      *string  `json:"size,omitempty"`
	Color     *string  `json:"color,omitempty"`
	Product   *Product `json:"product,omitempty"`
}

// Cart is returned by GET /cart
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// AddCartItemRequest is the payload for POST /cart
type AddCartItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

// UpdateCartItemRequest is the payload for PATCH /cart/{id}
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
