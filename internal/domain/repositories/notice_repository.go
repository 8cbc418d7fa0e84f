package repositories

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
)

// NoticeRepository defines the interface for notice operations. Add assigns
// the generated id before returning; List returns notices newest-first by
// publication date.
type NoticeRepository interface {
	Add(ctx context.Context, notice *entities.Notice) error
	List(ctx context.Context) ([]*entities.Notice, error)
}

// NoticeSearchRepository defines the interface for the optional notice
// search index.
type NoticeSearchRepository interface {
	InitSchema(ctx context.Context) error
	Index(ctx context.Context, notice *entities.Notice) error
	Search(ctx context.Context, query string) ([]*entities.Notice, error)
}
