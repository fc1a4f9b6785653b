package api

import "time"

// Order statuses as reported by the backend
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// DeliveryAddress is the shipping destination of an order
type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order is a placed order
type Order struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	Status             string     `json:"status"`
	DeliveryStreet     string     `json:"deliveryStreet"`
	DeliveryCity       string     `json:"deliveryCity"`
	DeliveryPostalCode string     `json:"deliveryPostalCode"`
	DeliveryCountry    string     `json:"deliveryCountry"`
	PaymentMethod      string     `json:"paymentMethod"` // card, cash
	Comment            *string    `json:"comment,omitempty"`
	Total              float64    `json:"total"`
	Items              []CartItem `json:"items,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// CreateOrderRequest is the payload for POST /orders
type CreateOrderRequest struct {
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Comment         *string         `json:"comment,omitempty"`
}
