package api

import "encoding/json"

// Realtime event names pushed by the backend over the WebSocket channel
const (
	EventProductCreated         = "product:created"
	EventProductUpdated         = "product:updated"
	EventProductPriceChanged    = "product:price_changed"
	EventProductDiscountApplied = "product:discount_applied"
	EventProductDiscountRemoved = "product:discount_removed"
	EventProductStockChanged    = "product:stock_changed"
	EventProductDeleted         = "product:deleted"

	EventCategoryCreated = "category:created"
	EventCategoryUpdated = "category:updated"
	EventCategoryDeleted = "category:deleted"

	EventOrderCreated       = "order:created"
	EventOrderUpdated       = "order:updated"
	EventOrderStatusUpdated = "order:status_updated"
	EventOrderCancelled     = "order:cancelled"

	EventTicketCreated       = "support:ticket_created"
	EventTicketReplied       = "support:ticket_replied"
	EventTicketStatusUpdated = "support:ticket_status_updated"
)

// Event is the wire envelope of a pushed domain event
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// RealtimeHandshake authenticates the WebSocket connection.
// Sent as the first client message after the upgrade.
type RealtimeHandshake struct {
	Token      string `json:"token"` // "Bearer <accessToken>"
	ClientType string `json:"clientType"`
}

// ProductEventPayload covers created/updated and the price, discount
// and stock sub-events. The full product snapshot is always attached;
// the old/new fields are informational only.
type ProductEventPayload struct {
	Timestamp       string   `json:"timestamp"`
	Product         *Product `json:"product"`
	ProductID       string   `json:"productId,omitempty"`
	OldPrice        *float64 `json:"oldPrice,omitempty"`
	NewPrice        *float64 `json:"newPrice,omitempty"`
	DiscountPercent *int     `json:"discountPercent,omitempty"`
	OldStock        *int     `json:"oldStock,omitempty"`
	NewStock        *int     `json:"newStock,omitempty"`
	InStock         *bool    `json:"inStock,omitempty"`
}

// ProductDeletedPayload carries only the deleted product id
type ProductDeletedPayload struct {
	Timestamp string `json:"timestamp"`
	ProductID string `json:"productId"`
}

// CategoryEventPayload covers category created/updated
type CategoryEventPayload struct {
	Timestamp string    `json:"timestamp"`
	Category  *Category `json:"category"`
}

// CategoryDeletedPayload carries only the deleted category id
type CategoryDeletedPayload struct {
	Timestamp  string `json:"timestamp"`
	CategoryID string `json:"categoryId"`
}

// OrderEventPayload covers order created/updated/status_updated/cancelled
type OrderEventPayload struct {
	Timestamp string `json:"timestamp"`
	Order     *Order `json:"order"`
	OrderID   string `json:"orderId,omitempty"`
	OldStatus string `json:"oldStatus,omitempty"`
	NewStatus string `json:"newStatus,omitempty"`
}

// TicketCreatedPayload announces a new support ticket
type TicketCreatedPayload struct {
	Timestamp string `json:"timestamp"`
	TicketID  int64  `json:"ticketId"`
	UserID    int64  `json:"userId"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// TicketRepliedPayload carries an admin reply. Only the fields present
// here are patched into the cached ticket; the rest is left untouched.
type TicketRepliedPayload struct {
	Timestamp string `json:"timestamp"`
	TicketID  int64  `json:"ticketId"`
	UserID    int64  `json:"userId"`
	Response  string `json:"response"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// TicketStatusUpdatedPayload carries a ticket status transition
type TicketStatusUpdatedPayload struct {
	Timestamp string `json:"timestamp"`
	TicketID  int64  `json:"ticketId"`
	UserID    int64  `json:"userId"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}
