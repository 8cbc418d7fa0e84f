package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/avaheights/society-portal/internal/domain/entities"
)

// NoticeService defines the notice operations used by the handler.
type NoticeService interface {
	Publish(ctx context.Context, notice *entities.Notice) error
	List(ctx context.Context) ([]*entities.Notice, error)
	Search(ctx context.Context, query string) ([]*entities.Notice, error)
}

// NoticeHandler handles notice-board HTTP requests.
type NoticeHandler struct {
	service NoticeService
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(service NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

type publishNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// PublishNotice handles POST /api/notices
func (h *NoticeHandler) PublishNotice(w http.ResponseWriter, r *http.Request) {
	var payload publishNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Title = strings.TrimSpace(payload.Title)
	payload.Content = strings.TrimSpace(payload.Content)
	if payload.Title == "" {
		respondWithError(w, http.StatusBadRequest, "title is required")
		return
	}
	if payload.Content == "" {
		respondWithError(w, http.StatusBadRequest, "content is required")
		return
	}

	notice := &entities.Notice{
		Title:   payload.Title,
		Content: payload.Content,
	}
	if payload.Date != "" {
		date, err := parseDate(payload.Date)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "date must be RFC 3339 or YYYY-MM-DD")
			return
		}
		notice.Date = date
	}

	if err := h.service.Publish(r.Context(), notice); err != nil {
		respondWithAppError(w, err, "failed to publish notice")
		return
	}

	respondWithJSON(w, http.StatusCreated, notice)
}

// ListNotices handles GET /api/notices
func (h *NoticeHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err, "failed to list notices")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"notices": notices,
		"count":   len(notices),
	})
}

// SearchNotices handles GET /api/notices/search
func (h *NoticeHandler) SearchNotices(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	notices, err := h.service.Search(r.Context(), query)
	if err != nil {
		respondWithAppError(w, err, "failed to search notices")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"notices": notices,
		"count":   len(notices),
	})
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
