package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/domain/entities"
)

// RentalService defines the rental operations used by the handler.
type RentalService interface {
	SubmitListing(ctx context.Context, listing *entities.RentalListing) error
	SubmitQuery(ctx context.Context, query *entities.RentalQuery) error
	Listings(ctx context.Context) ([]*entities.RentalListing, error)
	Queries(ctx context.Context) ([]*entities.RentalQuery, error)
	MarkListingHandled(ctx context.Context, id string) error
	MarkQueryHandled(ctx context.Context, id string) error
}

// RentalHandler handles rental listing and rental query HTTP requests.
type RentalHandler struct {
	service RentalService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(service RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

type submitListingRequest struct {
	FlatNumber    string `json:"flat_number"`
	FlatCode      string `json:"flat_code"`
	ExpectedRent  int    `json:"expected_rent"`
	ContactNumber string `json:"contact_number"`
}

// SubmitListing handles POST /api/rentals/listings
func (h *RentalHandler) SubmitListing(w http.ResponseWriter, r *http.Request) {
	var payload submitListingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.FlatNumber = strings.TrimSpace(payload.FlatNumber)
	payload.FlatCode = strings.TrimSpace(payload.FlatCode)
	payload.ContactNumber = strings.TrimSpace(payload.ContactNumber)

	if payload.FlatNumber == "" {
		respondWithError(w, http.StatusBadRequest, "flat_number is required")
		return
	}
	if payload.FlatCode == "" {
		respondWithError(w, http.StatusBadRequest, "flat_code is required")
		return
	}
	if payload.ExpectedRent <= 0 {
		respondWithError(w, http.StatusBadRequest, "expected_rent must be positive")
		return
	}
	if payload.ContactNumber == "" {
		respondWithError(w, http.StatusBadRequest, "contact_number is required")
		return
	}

	listing := &entities.RentalListing{
		FlatNumber:    payload.FlatNumber,
		FlatCode:      payload.FlatCode,
		ExpectedRent:  payload.ExpectedRent,
		ContactNumber: payload.ContactNumber,
		ListedBy:      middleware.IdentityFromContext(r.Context()).Username,
	}

	if err := h.service.SubmitListing(r.Context(), listing); err != nil {
		respondWithAppError(w, err, "failed to submit rental listing")
		return
	}

	respondWithJSON(w, http.StatusCreated, listing)
}

type submitQueryRequest struct {
	Name           string `json:"name"`
	Size           string `json:"size"`
	Facing         string `json:"facing"`
	Budget         string `json:"budget"`
	FurnishingType string `json:"furnishing_type"`
	ContactEmail   string `json:"contact_email"`
}

// SubmitQuery handles POST /api/rentals/queries
func (h *RentalHandler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	var payload submitQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.ContactEmail = strings.TrimSpace(payload.ContactEmail)

	if payload.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required")
		return
	}
	if payload.ContactEmail == "" {
		respondWithError(w, http.StatusBadRequest, "contact_email is required")
		return
	}

	query := &entities.RentalQuery{
		Name:           payload.Name,
		Size:           strings.TrimSpace(payload.Size),
		Facing:         strings.TrimSpace(payload.Facing),
		Budget:         strings.TrimSpace(payload.Budget),
		FurnishingType: strings.TrimSpace(payload.FurnishingType),
		ContactEmail:   payload.ContactEmail,
		RequestedBy:    middleware.IdentityFromContext(r.Context()).Username,
	}

	if err := h.service.SubmitQuery(r.Context(), query); err != nil {
		respondWithAppError(w, err, "failed to submit rental query")
		return
	}

	respondWithJSON(w, http.StatusCreated, query)
}

// ListRentals handles GET /api/rentals
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.Listings(r.Context())
	if err != nil {
		respondWithAppError(w, err, "failed to list rental listings")
		return
	}

	queries, err := h.service.Queries(r.Context())
	if err != nil {
		respondWithAppError(w, err, "failed to list rental queries")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"queries":  queries,
	})
}

// MarkListingHandled handles POST /api/rentals/listings/{id}/handled
func (h *RentalHandler) MarkListingHandled(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "listing ID is required")
		return
	}

	if err := h.service.MarkListingHandled(r.Context(), id); err != nil {
		respondWithAppError(w, err, "failed to mark rental listing handled")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "handled",
	})
}

// MarkQueryHandled handles POST /api/rentals/queries/{id}/handled
func (h *RentalHandler) MarkQueryHandled(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "query ID is required")
		return
	}

	if err := h.service.MarkQueryHandled(r.Context(), id); err != nil {
		respondWithAppError(w, err, "failed to mark rental query handled")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "handled",
	})
}
