package cli

import (
	"context"
	"fmt"

	"github.com/sportlane/shopclient/internal/client/cache"
	"github.com/sportlane/shopclient/pkg/api"
)

func (c *Cli) runOrders(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "create" {
		return c.createOrder(ctx)
	}

	orders, err := c.client.Orders(ctx)
	if err != nil {
		return err
	}

	entries := make([]cache.Entry, 0, len(orders))
	for i := range orders {
		order := orders[i]
		c.store.SetEntity(cache.Orders, order.ID, &order)
		entries = append(entries, cache.Entry{ID: order.ID, Value: &order})
	}
	c.store.SetList(cache.Orders, "", entries)

	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	fmt.Printf("%d orders\n\n", len(orders))
	for _, order := range orders {
		fmt.Printf("  %-12s %10s  %s  %s\n",
			order.Status, formatPrice(order.Total),
			order.CreatedAt.Format("2006-01-02"), order.ID)
	}
	return nil
}

func (c *Cli) createOrder(ctx context.Context) error {
	fmt.Println("=== New Order ===")
	fmt.Println()

	street, err := readInput("Street: ")
	if err != nil {
		return err
	}
	city, err := readInput("City: ")
	if err != nil {
		return err
	}
	postalCode, err := readInput("Postal code: ")
	if err != nil {
		return err
	}
	country, err := readInput("Country: ")
	if err != nil {
		return err
	}
	payment, err := readInput("Payment method (card/cash): ")
	if err != nil {
		return err
	}
	if payment != "card" && payment != "cash" {
		return fmt.Errorf("unsupported payment method: %s", payment)
	}

	order, err := c.client.CreateOrder(ctx, api.CreateOrderRequest{
		DeliveryAddress: api.DeliveryAddress{
			Street:     street,
			City:       city,
			PostalCode: postalCode,
			Country:    country,
		},
		PaymentMethod: payment,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ Order placed: %s (%s, total %s)\n", order.ID, order.Status, formatPrice(order.Total))
	return nil
}
