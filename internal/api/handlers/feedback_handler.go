package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/domain/entities"
)

// FeedbackService defines the feedback operations used by the handler.
type FeedbackService interface {
	Submit(ctx context.Context, item *entities.FeedbackItem) error
	List(ctx context.Context) ([]*entities.FeedbackItem, error)
}

// FeedbackHandler handles feedback HTTP requests.
type FeedbackHandler struct {
	service FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type submitFeedbackRequest struct {
	FlatNumber string `json:"flat_number"`
	Message    string `json:"message"`
}

// SubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var payload submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.FlatNumber = strings.TrimSpace(payload.FlatNumber)
	payload.Message = strings.TrimSpace(payload.Message)

	if payload.FlatNumber == "" {
		respondWithError(w, http.StatusBadRequest, "flat_number is required")
		return
	}
	if payload.Message == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}

	item := &entities.FeedbackItem{
		FlatNumber:  payload.FlatNumber,
		Message:     payload.Message,
		SubmittedBy: middleware.IdentityFromContext(r.Context()).Username,
	}

	if err := h.service.Submit(r.Context(), item); err != nil {
		respondWithAppError(w, err, "failed to submit feedback")
		return
	}

	respondWithJSON(w, http.StatusCreated, item)
}

// ListFeedback handles GET /api/feedback
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err, "failed to list feedback")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"feedback": items,
		"count":    len(items),
	})
}
