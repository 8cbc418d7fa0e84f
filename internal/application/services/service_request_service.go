package services

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/repositories"
)

// ServiceRequestService handles resident service requests.
type ServiceRequestService struct {
	repo repositories.ServiceRequestRepository
}

// NewServiceRequestService creates a new service request service.
func NewServiceRequestService(repo repositories.ServiceRequestRepository) *ServiceRequestService {
	return &ServiceRequestService{repo: repo}
}

// Submit stores a service request.
func (s *ServiceRequestService) Submit(ctx context.Context, request *entities.ServiceRequest) error {
	return s.repo.Add(ctx, request)
}

// List returns service requests newest-first by preferred date.
func (s *ServiceRequestService) List(ctx context.Context) ([]*entities.ServiceRequest, error) {
	return s.repo.List(ctx)
}

// MarkHandled flips a request's handled flag. Unknown ids return a NotFound
// error.
func (s *ServiceRequestService) MarkHandled(ctx context.Context, id string) error {
	return s.repo.MarkHandled(ctx, id)
}
