package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/sportlane/shopclient/internal/client/storage"
)

var langKey = []byte("language")

// SaveLanguage stores the preferred UI language code
func (s *Storage) SaveLanguage(ctx context.Context, code string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}
		if err := bucket.Put(langKey, []byte(code)); err != nil {
			return fmt.Errorf("failed to save language: %w", err)
		}
		return nil
	})
}

// GetLanguage returns the stored language code
func (s *Storage) GetLanguage(ctx context.Context) (string, error) {
	var code string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}
		data := bucket.Get(langKey)
		if data == nil {
			return storage.ErrPrefNotFound
		}
		code = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return code, nil
}
