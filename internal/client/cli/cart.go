package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sportlane/shopclient/pkg/api"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showCart(ctx)
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopclient cart add <productId> [quantity]")
		}
		quantity := 1
		if len(args) >= 3 {
			q, err := strconv.Atoi(args[2])
			if err != nil || q < 1 {
				return fmt.Errorf("invalid quantity: %s", args[2])
			}
			quantity = q
		}
		item, err := c.client.AddCartItem(ctx, api.AddCartItemRequest{
			ProductID: args[1],
			Quantity:  quantity,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added %d x %s to the cart\n", item.Quantity, item.ProductID)
		return nil

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: shopclient cart remove <itemId>")
		}
		if err := c.client.RemoveCartItem(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("✓ Removed.")
		return nil

	case "clear":
		if err := c.client.ClearCart(ctx); err != nil {
			return err
		}
		fmt.Println("✓ Cart cleared.")
		return nil

	default:
		return fmt.Errorf("unknown cart subcommand: %s", args[0])
	}
}

func (c *Cli) showCart(ctx context.Context) error {
	cart, err := c.client.Cart(ctx)
	if err != nil {
		return err
	}

	if len(cart.Items) == 0 {
		fmt.Println("Cart is empty.")
		return nil
	}

	fmt.Println("=== Cart ===")
	for _, item := range cart.Items {
		name := item.ProductID
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Printf("  %2d x %-32s %s\n", item.Quantity, truncate(name, 32), item.ID)
	}
	fmt.Printf("\nTotal: %s\n", formatPrice(cart.Total))
	return nil
}
