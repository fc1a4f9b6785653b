package api

import "time"

// Support ticket statuses
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// SupportTicket is a user support request
type SupportTicket struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	AdminResponse *string   `json:"adminResponse,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TicketsResponse is returned by GET /support/tickets
type TicketsResponse struct {
	Tickets []SupportTicket `json:"tickets"`
	Total   int             `json:"total"`
}

// CreateTicketRequest is the payload for POST /support/tickets
type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
