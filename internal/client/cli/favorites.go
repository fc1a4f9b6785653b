package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runFavorites(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "add":
			if len(args) < 2 {
				return fmt.Errorf("usage: shopclient favorites add <productId>")
			}
			if err := c.client.AddFavorite(ctx, args[1]); err != nil {
				return err
			}
			fmt.Println("✓ Added to favorites.")
			return nil
		case "remove":
			if len(args) < 2 {
				return fmt.Errorf("usage: shopclient favorites remove <productId>")
			}
			if err := c.client.RemoveFavorite(ctx, args[1]); err != nil {
				return err
			}
			fmt.Println("✓ Removed from favorites.")
			return nil
		default:
			return fmt.Errorf("unknown favorites subcommand: %s", args[0])
		}
	}

	resp, err := c.client.Favorites(ctx)
	if err != nil {
		return err
	}

	if len(resp.Products) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}

	fmt.Printf("%d favorites\n\n", len(resp.Products))
	for i := range resp.Products {
		printProductLine(&resp.Products[i])
	}
	return nil
}
