package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sportlane/shopclient/pkg/api"
)

// runWatch keeps the realtime connection open and prints every update
// the synchronizer applies, until the context is cancelled. The
// connection is keyed by the access token: a refresh mid-watch tears
// the socket down and dials again with the new token.
func (c *Cli) runWatch(ctx context.Context) error {
	token, err := c.guard.Token(ctx)
	if err != nil {
		return fmt.Errorf("not signed in: %w", err)
	}

	changes := c.state.Watch()

	c.synced.Start()
	defer c.synced.Stop()

	c.events.Connect(ctx, token)
	defer c.events.Close()

	printSub := c.events.Subscribe(api.EventProductPriceChanged, func(data json.RawMessage) {
		var payload api.ProductEventPayload
		if err := json.Unmarshal(data, &payload); err != nil || payload.Product == nil {
			return
		}
		fmt.Printf("price changed: %s -> %s\n", payload.Product.Name, formatPrice(payload.Product.Price))
	})
	defer printSub.Close()

	fmt.Println("Watching for updates. Press Ctrl+C to stop.")

	lastToken := token
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-changes:
			if !snap.IsAuthenticated {
				return fmt.Errorf("session ended")
			}
			if snap.AccessToken != "" && snap.AccessToken != lastToken {
				lastToken = snap.AccessToken
				c.events.Connect(ctx, snap.AccessToken)
			}
		}
	}
}
