package providers

import (
	"context"
)

// Slot names for the durable snapshots, one per collection.
const (
	SlotIdentity        = "identity"
	SlotNotices         = "notices"
	SlotServiceRequests = "service_requests"
	SlotRentalListings  = "rental_listings"
	SlotRentalQueries   = "rental_queries"
	SlotFeedback        = "feedback"
)

// SnapshotStore persists one serialized snapshot per named slot. A missing
// slot means the collection has not been initialized yet.
type SnapshotStore interface {
	// Load returns the slot contents; ok is false when the slot is absent.
	Load(ctx context.Context, slot string) (data []byte, ok bool, err error)

	// Save replaces the slot contents.
	Save(ctx context.Context, slot string, data []byte) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, slot string) error
}
