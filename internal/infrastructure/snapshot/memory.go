package snapshot

import (
	"context"
	"sync"

	"github.com/avaheights/society-portal/internal/domain/providers"
)

// MemoryStore keeps snapshots in process memory. Used in tests and as the
// no-durability fallback; contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ providers.SnapshotStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Load returns the slot contents
func (s *MemoryStore) Load(_ context.Context, slot string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[slot]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Save replaces the slot contents
func (s *MemoryStore) Save(_ context.Context, slot string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = stored
	return nil
}

// Delete removes the slot
func (s *MemoryStore) Delete(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}
