package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/domain/entities"
)

// ServiceRequestService defines the service request operations used by the
// handler.
type ServiceRequestService interface {
	Submit(ctx context.Context, request *entities.ServiceRequest) error
	List(ctx context.Context) ([]*entities.ServiceRequest, error)
	MarkHandled(ctx context.Context, id string) error
}

// ServiceRequestHandler handles service request HTTP requests.
type ServiceRequestHandler struct {
	service ServiceRequestService
}

// NewServiceRequestHandler creates a new service request handler
func NewServiceRequestHandler(service ServiceRequestService) *ServiceRequestHandler {
	return &ServiceRequestHandler{service: service}
}

type submitServiceRequest struct {
	FlatNumber  string `json:"flat_number"`
	ServiceType string `json:"service_type"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
}

// SubmitRequest handles POST /api/service-requests
func (h *ServiceRequestHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var payload submitServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.FlatNumber = strings.TrimSpace(payload.FlatNumber)
	payload.ServiceType = strings.TrimSpace(payload.ServiceType)
	payload.TimeSlot = strings.TrimSpace(payload.TimeSlot)

	if payload.FlatNumber == "" {
		respondWithError(w, http.StatusBadRequest, "flat_number is required")
		return
	}
	if payload.ServiceType == "" {
		respondWithError(w, http.StatusBadRequest, "service_type is required")
		return
	}
	if payload.Date == "" {
		respondWithError(w, http.StatusBadRequest, "date is required")
		return
	}
	if payload.TimeSlot == "" {
		respondWithError(w, http.StatusBadRequest, "time_slot is required")
		return
	}

	date, err := parseDate(payload.Date)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "date must be RFC 3339 or YYYY-MM-DD")
		return
	}

	request := &entities.ServiceRequest{
		FlatNumber:  payload.FlatNumber,
		ServiceType: payload.ServiceType,
		Date:        date,
		TimeSlot:    payload.TimeSlot,
		RequestedBy: middleware.IdentityFromContext(r.Context()).Username,
	}

	if err := h.service.Submit(r.Context(), request); err != nil {
		respondWithAppError(w, err, "failed to submit service request")
		return
	}

	respondWithJSON(w, http.StatusCreated, request)
}

// ListRequests handles GET /api/service-requests
func (h *ServiceRequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err, "failed to list service requests")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"service_requests": requests,
		"count":            len(requests),
	})
}

// MarkHandled handles POST /api/service-requests/{id}/handled
func (h *ServiceRequestHandler) MarkHandled(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "request ID is required")
		return
	}

	if err := h.service.MarkHandled(r.Context(), id); err != nil {
		respondWithAppError(w, err, "failed to mark service request handled")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "handled",
	})
}
