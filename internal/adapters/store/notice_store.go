package store

import (
	"context"
	"sort"
	"time"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// seedNotices is the one-time bootstrap applied when no notices snapshot
// exists yet.
func seedNotices() []*entities.Notice {
	return []*entities.Notice{
		{
			ID:      "notice-1",
			Title:   "Annual General Meeting",
			Content: "The Annual General Meeting (AGM) will be held on June 15th at 6:00 PM in the society hall. All residents are requested to attend.",
			Date:    time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:      "notice-2",
			Title:   "Water Supply Interruption",
			Content: "Due to maintenance work, there will be no water supply on Saturday (June 10th) from 10:00 AM to 2:00 PM. Please store water accordingly.",
			Date:    time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

// NoticeStore implements notice persistence over a snapshot slot.
type NoticeStore struct {
	c *collection[entities.Notice]
}

var _ repositories.NoticeRepository = (*NoticeStore)(nil)

// NewNoticeStore restores the notice collection from its snapshot, seeding
// the fixed example notices when none exists.
func NewNoticeStore(ctx context.Context, snapshots providers.SnapshotStore, opts ...Option) (*NoticeStore, error) {
	c, err := newCollection(
		ctx,
		snapshots,
		providers.SlotNotices,
		"notice",
		func(n *entities.Notice) string { return n.ID },
		func(n *entities.Notice, id string) { n.ID = id },
		seedNotices(),
		buildOptions(opts),
	)
	if err != nil {
		return nil, err
	}
	return &NoticeStore{c: c}, nil
}

// Add publishes a notice
func (s *NoticeStore) Add(ctx context.Context, notice *entities.Notice) error {
	if notice.Date.IsZero() {
		notice.Date = s.c.opts.clock().UTC()
	}
	return s.c.add(ctx, notice)
}

// List returns notices newest-first by publication date
func (s *NoticeStore) List(_ context.Context) ([]*entities.Notice, error) {
	notices := s.c.list()
	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].Date.After(notices[j].Date)
	})
	return notices, nil
}
