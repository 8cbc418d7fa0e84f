package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaheights/society-portal/internal/adapters/store"
	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/infrastructure/snapshot"
	apperrors "github.com/avaheights/society-portal/pkg/errors"
)

func TestRentalListingStore_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewRentalListingStore(ctx, snapshot.NewMemoryStore())
	require.NoError(t, err)

	first := &entities.RentalListing{FlatNumber: "C-302", FlatCode: "2BHK", ExpectedRent: 25000, ContactNumber: "9800011122", ListedBy: "mahesh"}
	second := &entities.RentalListing{FlatNumber: "D-105", FlatCode: "1BHK", ExpectedRent: 15000, ContactNumber: "9800033344", ListedBy: "sunita"}
	require.NoError(t, s.Add(ctx, first))
	require.NoError(t, s.Add(ctx, second))

	listings, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "D-105", listings[0].FlatNumber)
	assert.Equal(t, "C-302", listings[1].FlatNumber)
	assert.True(t, strings.HasPrefix(listings[0].ID, "listing-"))
}

func TestRentalListingStore_MarkHandled(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()
	s, err := store.NewRentalListingStore(ctx, snapshots)
	require.NoError(t, err)

	listing := &entities.RentalListing{FlatNumber: "C-302", FlatCode: "2BHK", ExpectedRent: 25000, ContactNumber: "9800011122"}
	require.NoError(t, s.Add(ctx, listing))
	require.NoError(t, s.MarkHandled(ctx, listing.ID))

	reopened, err := store.NewRentalListingStore(ctx, snapshots)
	require.NoError(t, err)
	listings, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.True(t, listings[0].Handled)
}

func TestRentalListingStore_MarkHandledUnknownID(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewRentalListingStore(ctx, snapshot.NewMemoryStore())
	require.NoError(t, err)

	err = s.MarkHandled(ctx, "listing-404")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestRentalQueryStore_AddAndMarkHandled(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewRentalQueryStore(ctx, snapshot.NewMemoryStore())
	require.NoError(t, err)

	query := &entities.RentalQuery{
		Name: "Priya Nair", Size: "2BHK", Facing: "east", Budget: "20000-25000",
		FurnishingType: "semi-furnished", ContactEmail: "priya@example.com", RequestedBy: "priya",
	}
	require.NoError(t, s.Add(ctx, query))
	assert.True(t, strings.HasPrefix(query.ID, "query-"))
	assert.False(t, query.Handled)

	require.NoError(t, s.MarkHandled(ctx, query.ID))

	queries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.True(t, queries[0].Handled)
}

func TestRentalStores_UseSeparateSlots(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()

	listings, err := store.NewRentalListingStore(ctx, snapshots)
	require.NoError(t, err)
	queries, err := store.NewRentalQueryStore(ctx, snapshots)
	require.NoError(t, err)

	require.NoError(t, listings.Add(ctx, &entities.RentalListing{FlatNumber: "C-302", FlatCode: "2BHK", ExpectedRent: 25000, ContactNumber: "9800011122"}))

	got, err := queries.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
