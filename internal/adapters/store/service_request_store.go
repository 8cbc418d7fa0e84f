package store

import (
	"context"
	"sort"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// ServiceRequestStore implements service request persistence over a
// snapshot slot.
type ServiceRequestStore struct {
	c *collection[entities.ServiceRequest]
}

var _ repositories.ServiceRequestRepository = (*ServiceRequestStore)(nil)

// NewServiceRequestStore restores the service request collection from its
// snapshot.
func NewServiceRequestStore(ctx context.Context, snapshots providers.SnapshotStore, opts ...Option) (*ServiceRequestStore, error) {
	c, err := newCollection(
		ctx,
		snapshots,
		providers.SlotServiceRequests,
		"service",
		func(r *entities.ServiceRequest) string { return r.ID },
		func(r *entities.ServiceRequest, id string) { r.ID = id },
		nil,
		buildOptions(opts),
	)
	if err != nil {
		return nil, err
	}
	return &ServiceRequestStore{c: c}, nil
}

// Add records a new service request
func (s *ServiceRequestStore) Add(ctx context.Context, request *entities.ServiceRequest) error {
	request.Handled = false
	return s.c.add(ctx, request)
}

// List returns service requests newest-first by preferred date
func (s *ServiceRequestStore) List(_ context.Context) ([]*entities.ServiceRequest, error) {
	requests := s.c.list()
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Date.After(requests[j].Date)
	})
	return requests, nil
}

// MarkHandled flips the handled flag. Idempotent; unknown ids return a
// NotFound error.
func (s *ServiceRequestStore) MarkHandled(ctx context.Context, id string) error {
	return s.c.update(ctx, id, func(r *entities.ServiceRequest) {
		r.Handled = true
	})
}
