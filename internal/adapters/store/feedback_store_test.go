package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaheights/society-portal/internal/adapters/store"
	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/infrastructure/snapshot"
)

func TestFeedbackStore_AddDefaultsSubmittedAt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, time.July, 2, 11, 0, 0, 0, time.UTC)

	s, err := store.NewFeedbackStore(ctx, snapshot.NewMemoryStore(), store.WithClock(fixedClock(now)))
	require.NoError(t, err)

	item := &entities.FeedbackItem{FlatNumber: "A-101", Message: "Garden lights are out.", SubmittedBy: "ramesh"}
	require.NoError(t, s.Add(ctx, item))

	assert.Equal(t, now, item.SubmittedAt)
	assert.NotEmpty(t, item.ID)
}

func TestFeedbackStore_ListSortsBySubmissionTimeDesc(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewFeedbackStore(ctx, snapshot.NewMemoryStore())
	require.NoError(t, err)

	older := &entities.FeedbackItem{
		FlatNumber: "A-101", Message: "older",
		SubmittedAt: time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &entities.FeedbackItem{
		FlatNumber: "B-204", Message: "newer",
		SubmittedAt: time.Date(2023, time.July, 3, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Add(ctx, older))
	require.NoError(t, s.Add(ctx, newer))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Message)
	assert.Equal(t, "older", items[1].Message)
}

func TestFeedbackStore_RestartKeepsRecords(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()

	s, err := store.NewFeedbackStore(ctx, snapshots)
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, &entities.FeedbackItem{FlatNumber: "A-101", Message: "keep me"}))

	reopened, err := store.NewFeedbackStore(ctx, snapshots)
	require.NoError(t, err)
	items, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "keep me", items[0].Message)
}
