package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportlane/shopclient/internal/client/storage"
)

func (c *Cli) runLang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		code, err := c.prefs.GetLanguage(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrPrefNotFound) {
				fmt.Println("Language: not set (default: en)")
				return nil
			}
			return err
		}
		fmt.Printf("Language: %s\n", code)
		return nil
	}

	code := args[0]
	if err := c.prefs.SaveLanguage(ctx, code); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	fmt.Printf("✓ Language set to %s\n", code)
	return nil
}
