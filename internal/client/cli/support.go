package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sportlane/shopclient/internal/client/cache"
	"github.com/sportlane/shopclient/pkg/api"
)

func (c *Cli) runSupport(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "create" {
		return c.createTicket(ctx)
	}

	resp, err := c.client.Tickets(ctx, api.PageQuery{})
	if err != nil {
		return err
	}

	entries := make([]cache.Entry, 0, len(resp.Tickets))
	for i := range resp.Tickets {
		ticket := resp.Tickets[i]
		key := strconv.FormatInt(ticket.ID, 10)
		c.store.SetEntity(cache.Tickets, key, &ticket)
		entries = append(entries, cache.Entry{ID: key, Value: &ticket})
	}
	c.store.SetList(cache.Tickets, "", entries)

	if len(resp.Tickets) == 0 {
		fmt.Println("No support tickets.")
		return nil
	}

	fmt.Printf("%d tickets\n\n", len(resp.Tickets))
	for _, ticket := range resp.Tickets {
		fmt.Printf("  #%-6d %-12s %s\n", ticket.ID, ticket.Status, truncate(ticket.Subject, 48))
		if ticket.AdminResponse != nil {
			fmt.Printf("          reply: %s\n", truncate(*ticket.AdminResponse, 56))
		}
	}
	return nil
}

func (c *Cli) createTicket(ctx context.Context) error {
	fmt.Println("=== New Support Ticket ===")
	fmt.Println()

	subject, err := readInput("Subject: ")
	if err != nil {
		return err
	}
	message, err := readInput("Message: ")
	if err != nil {
		return err
	}

	ticket, err := c.client.CreateTicket(ctx, api.CreateTicketRequest{
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ Ticket #%d opened (%s)\n", ticket.ID, ticket.Status)
	return nil
}
