package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sportlane/shopclient/pkg/api"
)

func (c *Cli) runReviews(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "Page size")
	offset := fs.Int("offset", 0, "Page offset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: shopclient reviews <productId>")
	}
	productID := fs.Arg(0)

	resp, err := c.client.Reviews(ctx, productID, api.PageQuery{
		SortBy:    "createdAt",
		SortOrder: "desc",
		Limit:     *limit,
		Offset:    *offset,
	})
	if err != nil {
		return err
	}

	if len(resp.Reviews) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	fmt.Printf("%d of %d reviews\n\n", len(resp.Reviews), resp.Total)
	for _, r := range resp.Reviews {
		stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", 5-r.Rating)
		fmt.Printf("  %s  %s  %s\n", stars, r.CreatedAt.Format("2006-01-02"), r.UserName)
		fmt.Printf("  %s\n\n", r.Comment)
	}
	return nil
}
