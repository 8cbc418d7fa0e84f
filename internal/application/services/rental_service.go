package services

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// RentalService handles rental listings and rental queries. The two
// collections are independent; only the admin review flow treats them as a
// pair.
type RentalService struct {
	listings repositories.RentalListingRepository
	queries  repositories.RentalQueryRepository
}

// NewRentalService creates a new rental service.
func NewRentalService(listings repositories.RentalListingRepository, queries repositories.RentalQueryRepository) *RentalService {
	return &RentalService{listings: listings, queries: queries}
}

// SubmitListing stores a rental listing.
func (s *RentalService) SubmitListing(ctx context.Context, listing *entities.RentalListing) error {
	return s.listings.Add(ctx, listing)
}

// SubmitQuery stores a rental query.
func (s *RentalService) SubmitQuery(ctx context.Context, query *entities.RentalQuery) error {
	return s.queries.Add(ctx, query)
}

// Listings returns rental listings in insertion order.
func (s *RentalService) Listings(ctx context.Context) ([]*entities.RentalListing, error) {
	return s.listings.List(ctx)
}

// Queries returns rental queries in insertion order.
func (s *RentalService) Queries(ctx context.Context) ([]*entities.RentalQuery, error) {
	return s.queries.List(ctx)
}

// MarkListingHandled flips a listing's handled flag.
func (s *RentalService) MarkListingHandled(ctx context.Context, id string) error {
	return s.listings.MarkHandled(ctx, id)
}

// MarkQueryHandled flips a query's handled flag.
func (s *RentalService) MarkQueryHandled(ctx context.Context, id string) error {
	return s.queries.MarkHandled(ctx, id)
}
