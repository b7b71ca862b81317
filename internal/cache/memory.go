package cache

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store without expiry, used when Redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	gen     int64
	entries map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	return value, s.gen, ok, nil
}

// SetAt drops the write when the store was invalidated after gen was read.
func (s *MemoryStore) SetAt(_ context.Context, gen int64, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil
	}
	s.entries[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Invalidate(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.entries = make(map[string][]byte)
	return nil
}
