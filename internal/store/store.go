// ABOUTME: KV is the byte-oriented local table store contract.
// ABOUTME: Backends: badger (default), sqlite, charm cloud KV, in-memory.
package store

import (
	"os"
	"path/filepath"
)

// KV is the on-device persistence port consumed by the data repository.
// GetItem returns (nil, nil) when the key is absent; values are opaque
// serialized table contents, overwritten wholesale by SetItem.
type KV interface {
	GetItem(key string) ([]byte, error)
	SetItem(key string, value []byte) error
	Close() error
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}
