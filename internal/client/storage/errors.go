package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no credential pair is stored
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrPrefNotFound indicates that the requested preference was never saved
	ErrPrefNotFound = errors.New("preference not found")
)
