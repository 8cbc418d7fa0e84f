package repositories

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
)

// RentalListingRepository defines the interface for rental listing
// operations. List returns listings in insertion order (newest first).
type RentalListingRepository interface {
	Add(ctx context.Context, listing *entities.RentalListing) error
	List(ctx context.Context) ([]*entities.RentalListing, error)
	MarkHandled(ctx context.Context, id string) error
}

// RentalQueryRepository defines the interface for rental query operations.
type RentalQueryRepository interface {
	Add(ctx context.Context, query *entities.RentalQuery) error
	List(ctx context.Context) ([]*entities.RentalQuery, error)
	MarkHandled(ctx context.Context, id string) error
}
