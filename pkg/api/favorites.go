package api

// FavoritesResponse is returned by GET /favorites
type FavoritesResponse struct {
	Products []Product `json:"products"`
}
