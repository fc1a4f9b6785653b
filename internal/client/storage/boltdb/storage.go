package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/sportlane/shopclient/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth  = []byte("auth")
	bucketPrefs = []byte("prefs")
)

// Storage is the BoltDB-backed persistence for the client: the
// credential pair and user preferences. API response caches are
// deliberately not persisted here.
type Storage struct {
	db *bbolt.DB
}

// Compile-time interface checks
var (
	_ storage.AuthStorage  = (*Storage)(nil)
	_ storage.PrefsStorage = (*Storage)(nil)
)

// New opens the database file and prepares the buckets
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAuth); err != nil {
			return fmt.Errorf("failed to create auth bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketPrefs); err != nil {
			return fmt.Errorf("failed to create prefs bucket: %w", err)
		}
		return nil
	})
}
