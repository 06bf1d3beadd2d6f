// ABOUTME: In-memory implementation of the KV table store.
// ABOUTME: Used by tests and as a scratch store; contents are not persisted.
package store

import "sync"

// MemoryStore keeps tables in a process-local map.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// GetItem returns the stored value for key, or nil if absent.
func (s *MemoryStore) GetItem(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// SetItem overwrites the stored value for key.
func (s *MemoryStore) SetItem(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.items[key] = stored
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
