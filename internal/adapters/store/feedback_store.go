package store

import (
	"context"
	"sort"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// FeedbackStore implements feedback persistence over a snapshot slot.
type FeedbackStore struct {
	c *collection[entities.FeedbackItem]
}

var _ repositories.FeedbackRepository = (*FeedbackStore)(nil)

// NewFeedbackStore restores the feedback collection from its snapshot.
func NewFeedbackStore(ctx context.Context, snapshots providers.SnapshotStore, opts ...Option) (*FeedbackStore, error) {
	c, err := newCollection(
		ctx,
		snapshots,
		providers.SlotFeedback,
		"feedback",
		func(f *entities.FeedbackItem) string { return f.ID },
		func(f *entities.FeedbackItem, id string) { f.ID = id },
		nil,
		buildOptions(opts),
	)
	if err != nil {
		return nil, err
	}
	return &FeedbackStore{c: c}, nil
}

// Add records a feedback item
func (s *FeedbackStore) Add(ctx context.Context, item *entities.FeedbackItem) error {
	if item.SubmittedAt.IsZero() {
		item.SubmittedAt = s.c.opts.clock().UTC()
	}
	return s.c.add(ctx, item)
}

// List returns feedback newest-first by submission time
func (s *FeedbackStore) List(_ context.Context) ([]*entities.FeedbackItem, error) {
	items := s.c.list()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SubmittedAt.After(items[j].SubmittedAt)
	})
	return items, nil
}
