package repositories

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
)

// SessionRepository owns the single active identity. Save replaces it,
// Clear removes it, Current returns it (nil when anonymous). The
// implementation restores the identity from durable storage once at
// construction.
type SessionRepository interface {
	Save(ctx context.Context, identity *entities.Identity) error
	Clear(ctx context.Context) error
	Current() *entities.Identity
}
