package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/domain/entities"
	apperrors "github.com/avaheights/society-portal/pkg/errors"
)

// SessionService defines the session operations used by the handlers.
type SessionService interface {
	SignIn(ctx context.Context, username string, role entities.Role) (*entities.Identity, error)
	SignOut(ctx context.Context) error
	Current() *entities.Identity
}

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	sessions SessionService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login handles POST /api/auth/login. Credentials are not verified against
// any authority; only presence is checked here, before the session service
// is invoked.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" {
		respondWithError(w, http.StatusBadRequest, "username is required")
		return
	}
	if payload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "password is required")
		return
	}

	role := entities.Role(payload.Role)
	if !role.Valid() {
		respondWithError(w, http.StatusBadRequest, "role must be tenant or admin")
		return
	}

	identity, err := h.sessions.SignIn(r.Context(), payload.Username, role)
	if err != nil {
		respondWithAppError(w, err, "failed to sign in")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"token":    identity.ID,
		"identity": identity,
	})
}

// Logout handles POST /api/auth/logout. Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		respondWithAppError(w, err, "failed to sign out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session. The route sits behind the auth
// gate, so the identity is always present here.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, middleware.IdentityFromContext(r.Context()))
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

func respondWithAppError(w http.ResponseWriter, err error, fallback string) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
		case apperrors.ErrorTypeForbidden:
			respondWithError(w, http.StatusForbidden, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, fallback)
}
