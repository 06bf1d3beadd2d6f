// ABOUTME: Charm Cloud KV implementation of the table store.
// ABOUTME: Replicates table blobs through Charm; E2E encrypted with the SSH key.
package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"
)

const (
	charmDBName = "fittrack"
	charmHost   = "charm.2389.dev"
)

// CharmStore keeps table blobs in Charm KV. Every write also replicates to
// Charm Cloud, giving a second, whole-table sync channel alongside the
// row-level sync engine.
type CharmStore struct {
	kv *kv.KV
}

// OpenCharm opens the Charm-backed store, pulling remote data first.
func OpenCharm() (*CharmStore, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return &CharmStore{kv: db}, nil
}

// GetItem returns the stored value for key, or nil if absent.
func (s *CharmStore) GetItem(key string) ([]byte, error) {
	value, err := s.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// SetItem overwrites the stored value for key and replicates it.
func (s *CharmStore) SetItem(key string, value []byte) error {
	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := s.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	_ = s.kv.Sync()
	return nil
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	return s.kv.Close()
}
