package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// SessionService authenticates, remembers and classifies the current actor.
// Credentials are accepted unconditionally; the portal trusts any non-empty
// username and password (checked by the caller). The identity id doubles as
// the opaque bearer token for the HTTP layer, so a restored session keeps
// its token.
type SessionService struct {
	repo    repositories.SessionRepository
	latency time.Duration
}

// NewSessionService creates a new session service. latency models the
// sign-in round trip; zero disables the delay.
func NewSessionService(repo repositories.SessionRepository, latency time.Duration) *SessionService {
	return &SessionService{repo: repo, latency: latency}
}

// SignIn replaces the current identity with a fresh one for the given
// username and role, persists it and returns it.
func (s *SessionService) SignIn(ctx context.Context, username string, role entities.Role) (*entities.Identity, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	identity := &entities.Identity{
		ID:       "user-" + uuid.New().String(),
		Username: username,
		Role:     role,
	}

	if err := s.repo.Save(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// SignOut clears the current identity. Idempotent.
func (s *SessionService) SignOut(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Current returns the active identity, or nil when anonymous
func (s *SessionService) Current() *entities.Identity {
	return s.repo.Current()
}

// Authenticate resolves a bearer token to the active identity. A token that
// no longer names the current identity is anonymous.
func (s *SessionService) Authenticate(token string) *entities.Identity {
	current := s.repo.Current()
	if current == nil || token == "" || current.ID != token {
		return nil
	}
	return current
}

// IsAuthenticated reports whether someone is signed in
func (s *SessionService) IsAuthenticated() bool {
	return s.repo.Current() != nil
}

// IsAdmin reports whether the signed-in actor is an admin
func (s *SessionService) IsAdmin() bool {
	return s.repo.Current().IsAdmin()
}
