package services

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// FeedbackService handles feedback submissions.
type FeedbackService struct {
	repo repositories.FeedbackRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(repo repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Submit stores a feedback item.
func (s *FeedbackService) Submit(ctx context.Context, item *entities.FeedbackItem) error {
	return s.repo.Add(ctx, item)
}

// List returns feedback newest-first by submission time.
func (s *FeedbackService) List(ctx context.Context) ([]*entities.FeedbackItem, error) {
	return s.repo.List(ctx)
}
