package storage

import "context"

// PrefsStorage persists user preferences across restarts.
// Language is the only preference the client keeps locally; everything
// else lives on the server or in the memory-only cache.
type PrefsStorage interface {
	// SaveLanguage stores the preferred UI language code (e.g. "en", "de")
	SaveLanguage(ctx context.Context, code string) error

	// GetLanguage returns the stored language code.
	// Returns ErrPrefNotFound if none was saved.
	GetLanguage(ctx context.Context) (string, error)
}
