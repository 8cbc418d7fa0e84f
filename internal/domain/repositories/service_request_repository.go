package repositories

import (
	"context"

	"github.com/avaheights/society-portal/internal/domain/entities"
)

// ServiceRequestRepository defines the interface for service request
// operations. MarkHandled returns a NotFound error for unknown ids.
type ServiceRequestRepository interface {
	Add(ctx context.Context, request *entities.ServiceRequest) error
	List(ctx context.Context) ([]*entities.ServiceRequest, error)
	MarkHandled(ctx context.Context, id string) error
}
