package repositories

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
)

// FeedbackRepository defines the interface for feedback operations.
type FeedbackRepository interface {
	Add(ctx context.Context, item *entities.FeedbackItem) error
	List(ctx context.Context) ([]*entities.FeedbackItem, error)
}
