package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// NoticeService handles notice publication and lookup.
type NoticeService struct {
	repo   repositories.NoticeRepository
	search repositories.NoticeSearchRepository
}

// NewNoticeService creates a new notice service. search may be nil; Search
// then falls back to an in-memory scan.
func NewNoticeService(repo repositories.NoticeRepository, search repositories.NoticeSearchRepository) *NoticeService {
	return &NoticeService{repo: repo, search: search}
}

// Publish stores a notice and indexes it for search. Index failures are
// logged, not surfaced; the notice is already durable at that point.
func (s *NoticeService) Publish(ctx context.Context, notice *entities.Notice) error {
	if err := s.repo.Add(ctx, notice); err != nil {
		return err
	}

	if s.search != nil {
		if err := s.search.Index(ctx, notice); err != nil {
			log.Warn().Err(err).Str("notice_id", notice.ID).Msg("failed to index notice")
		}
	}
	return nil
}

// List returns notices newest-first by publication date
func (s *NoticeService) List(ctx context.Context) ([]*entities.Notice, error) {
	return s.repo.List(ctx)
}

// Search returns notices matching the query
func (s *NoticeService) Search(ctx context.Context, query string) ([]*entities.Notice, error) {
	if s.search != nil {
		return s.search.Search(ctx, query)
	}

	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := []*entities.Notice{}
	for _, n := range notices {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			matches = append(matches, n)
		}
	}
	return matches, nil
}
