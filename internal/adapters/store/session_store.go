package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/domain/repositories"
	apperrors "github.com/avaheights/society-portal/pkg/errors"
)

// SessionStore owns the single active identity and keeps it in write-through
// agreement with the identity snapshot slot.
type SessionStore struct {
	mu        sync.RWMutex
	snapshots providers.SnapshotStore
	current   *entities.Identity
}

var _ repositories.SessionRepository = (*SessionStore)(nil)

// NewSessionStore restores the identity from durable storage if present. A
// corrupt snapshot means anonymous, not a startup failure.
func NewSessionStore(ctx context.Context, snapshots providers.SnapshotStore) (*SessionStore, error) {
	s := &SessionStore{snapshots: snapshots}

	data, ok, err := snapshots.Load(ctx, providers.SlotIdentity)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load identity snapshot", err)
	}
	if ok {
		var identity entities.Identity
		if err := json.Unmarshal(data, &identity); err != nil {
			log.Warn().Err(err).Msg("discarding corrupt identity snapshot")
		} else {
			s.current = &identity
		}
	}

	return s, nil
}

// Save replaces the current identity
func (s *SessionStore) Save(ctx context.Context, identity *entities.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return apperrors.NewInternalError("failed to encode identity", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshots.Save(ctx, providers.SlotIdentity, data); err != nil {
		return apperrors.NewInternalError("failed to persist identity", err)
	}
	s.current = identity
	return nil
}

// Clear removes the current identity. Idempotent.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshots.Delete(ctx, providers.SlotIdentity); err != nil {
		return apperrors.NewInternalError("failed to clear identity", err)
	}
	s.current = nil
	return nil
}

// Current returns the active identity, or nil when anonymous
func (s *SessionStore) Current() *entities.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	identity := *s.current
	return &identity
}
