package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/sportlane/shopclient/internal/client/cache"
	"github.com/sportlane/shopclient/pkg/api"
)

func (c *Cli) runProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	search := fs.String("search", "", "Full-text search")
	category := fs.String("category", "", "Filter by category id")
	sortBy := fs.String("sort", "", "Sort field (price, rating, name, createdAt)")
	sortOrder := fs.String("order", "", "Sort order (asc, desc)")
	limit := fs.Int("limit", 20, "Page size")
	offset := fs.Int("offset", 0, "Page offset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := api.ProductsQuery{
		Search:     *search,
		CategoryID: *category,
		SortBy:     *sortBy,
		SortOrder:  *sortOrder,
		Limit:      *limit,
		Offset:     *offset,
	}

	resp, err := c.client.Products(ctx, query)
	if err != nil {
		return err
	}
	c.cacheProducts(query, resp)

	fmt.Printf("Products %d-%d of %d\n\n", resp.Offset+1, resp.Offset+len(resp.Products), resp.Total)
	for i := range resp.Products {
		printProductLine(&resp.Products[i])
	}
	return nil
}

func (c *Cli) runProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: shopclient product <id>")
	}
	id := args[0]

	// Serve from cache when a realtime patch already holds a snapshot
	if v, ok := c.store.Entity(cache.Products, id); ok {
		if p, ok := v.(*api.Product); ok {
			printProduct(p)
			return nil
		}
	}

	p, err := c.client.Product(ctx, id)
	if err != nil {
		return err
	}
	c.store.SetEntity(cache.Products, p.ID, p)

	printProduct(p)
	return nil
}

func (c *Cli) runCategories(ctx context.Context) error {
	resp, err := c.client.Categories(ctx)
	if err != nil {
		return err
	}

	entries := make([]cache.Entry, 0, len(resp.Categories))
	for i := range resp.Categories {
		cat := resp.Categories[i]
		c.store.SetEntity(cache.Categories, cat.ID, &cat)
		entries = append(entries, cache.Entry{ID: cat.ID, Value: &cat})
	}
	c.store.SetList(cache.Categories, "", entries)

	fmt.Printf("%d categories\n\n", len(resp.Categories))
	for _, cat := range resp.Categories {
		fmt.Printf("  %-24s %s\n", cat.Name, cat.ID)
	}
	return nil
}

// cacheProducts stores a product page under its query signature and
// primes the single-entity slots, keeping both keyed the same way the
// realtime patch handlers expect.
func (c *Cli) cacheProducts(query api.ProductsQuery, resp *api.ProductsResponse) {
	entries := make([]cache.Entry, 0, len(resp.Products))
	for i := range resp.Products {
		p := resp.Products[i]
		c.store.SetEntity(cache.Products, p.ID, &p)
		entries = append(entries, cache.Entry{ID: p.ID, Value: &p})
	}
	c.store.SetList(cache.Products, query.Signature(), entries)
}

func printProductLine(p *api.Product) {
	stock := "in stock"
	if !p.InStock {
		stock = "out of stock"
	}
	fmt.Printf("  %-32s %10s  %-12s %s\n", truncate(p.Name, 32), formatPrice(p.Price), stock, p.ID)
}

func printProduct(p *api.Product) {
	fmt.Printf("=== %s ===\n", p.Name)
	fmt.Printf("ID:       %s\n", p.ID)
	fmt.Printf("SKU:      %s\n", p.SKU)
	fmt.Printf("Price:    %s\n", formatPrice(p.Price))
	if p.OldPrice != nil {
		fmt.Printf("Old:      %s\n", formatPrice(*p.OldPrice))
	}
	if p.Rating != nil {
		fmt.Printf("Rating:   %.1f (%d reviews)\n", *p.Rating, p.ReviewCount)
	}
	if p.InStock {
		if p.StockQuantity != nil {
			fmt.Printf("Stock:    %d\n", *p.StockQuantity)
		} else {
			fmt.Println("Stock:    available")
		}
	} else {
		fmt.Println("Stock:    out of stock")
	}
	if p.Brand != nil {
		fmt.Printf("Brand:    %s\n", *p.Brand)
	}
	fmt.Printf("\n%s\n", p.Description)
}
