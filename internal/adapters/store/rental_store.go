package store

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// RentalListingStore implements rental listing persistence over a snapshot
// slot. Listings are exposed in insertion order, newest first.
type RentalListingStore struct {
	c *collection[entities.RentalListing]
}

var _ repositories.RentalListingRepository = (*RentalListingStore)(nil)

// NewRentalListingStore restores the rental listing collection from its
// snapshot.
func NewRentalListingStore(ctx context.Context, snapshots providers.SnapshotStore, opts ...Option) (*RentalListingStore, error) {
	c, err := newCollection(
		ctx,
		snapshots,
		providers.SlotRentalListings,
		"listing",
		func(l *entities.RentalListing) string { return l.ID },
		func(l *entities.RentalListing, id string) { l.ID = id },
		nil,
		buildOptions(opts),
	)
	if err != nil {
		return nil, err
	}
	return &RentalListingStore{c: c}, nil
}

// Add records a new rental listing
func (s *RentalListingStore) Add(ctx context.Context, listing *entities.RentalListing) error {
	listing.Handled = false
	return s.c.add(ctx, listing)
}

// List returns rental listings in insertion order
func (s *RentalListingStore) List(_ context.Context) ([]*entities.RentalListing, error) {
	return s.c.list(), nil
}

// MarkHandled flips the handled flag
func (s *RentalListingStore) MarkHandled(ctx context.Context, id string) error {
	return s.c.update(ctx, id, func(l *entities.RentalListing) {
		l.Handled = true
	})
}

// RentalQueryStore implements rental query persistence over a snapshot slot.
type RentalQueryStore struct {
	c *collection[entities.RentalQuery]
}

var _ repositories.RentalQueryRepository = (*RentalQueryStore)(nil)

// NewRentalQueryStore restores the rental query collection from its
// snapshot.
func NewRentalQueryStore(ctx context.Context, snapshots providers.SnapshotStore, opts ...Option) (*RentalQueryStore, error) {
	c, err := newCollection(
		ctx,
		snapshots,
		providers.SlotRentalQueries,
		"query",
		func(q *entities.RentalQuery) string { return q.ID },
		func(q *entities.RentalQuery, id string) { q.ID = id },
		nil,
		buildOptions(opts),
	)
	if err != nil {
		return nil, err
	}
	return &RentalQueryStore{c: c}, nil
}

// Add records a new rental query
func (s *RentalQueryStore) Add(ctx context.Context, query *entities.RentalQuery) error {
	query.Handled = false
	return s.c.add(ctx, query)
}

// List returns rental queries in insertion order
func (s *RentalQueryStore) List(_ context.Context) ([]*entities.RentalQuery, error) {
	return s.c.list(), nil
}

// MarkHandled flips the handled flag
func (s *RentalQueryStore) MarkHandled(ctx context.Context, id string) error {
	return s.c.update(ctx, id, func(q *entities.RentalQuery) {
		q.Handled = true
	})
}
