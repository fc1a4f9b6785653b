package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sportlane/shopclient/pkg/api"
)

// Tickets lists the user's support tickets
func (c *Client) Tickets(ctx context.Context, q api.PageQuery) (*api.TicketsResponse, error) {
	var resp api.TicketsResponse
	if err := c.doAuthRequest(ctx, "GET", "/support/tickets", q.Values(), nil, &resp); err != nil {
		return nil, fmt.Errorf("tickets request failed: %w", err)
	}
	return &resp, nil
}

// Ticket fetches one support ticket by id
func (c *Client) Ticket(ctx context.Context, id int64) (*api.SupportTicket, error) {
	var resp api.SupportTicket
	path := "/support/tickets/" + strconv.FormatInt(id, 10)
	if err := c.doAuthRequest(ctx, "GET", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("ticket request failed: %w", err)
	}
	return &resp, nil
}

// CreateTicket opens a new support ticket
func (c *Client) CreateTicket(ctx context.Context, req api.CreateTicketRequest) (*api.SupportTicket, error) {
	var resp api.SupportTicket
	if err := c.doAuthRequest(ctx, "POST", "/support/tickets", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create ticket request failed: %w", err)
	}
	return &resp, nil
}
