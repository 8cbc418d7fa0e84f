package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avaheights/society-portal/internal/domain/entities"
)

// SessionAuthenticator resolves bearer tokens to the active identity.
type SessionAuthenticator interface {
	Authenticate(token string) *entities.Identity
}

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext returns the identity attached by the auth middleware,
// or nil.
func IdentityFromContext(ctx context.Context) *entities.Identity {
	identity, _ := ctx.Value(identityContextKey).(*entities.Identity)
	return identity
}

// AuthMiddleware gates routes by session state and role.
type AuthMiddleware struct {
	sessions SessionAuthenticator
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions SessionAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAuth rejects anonymous requests with 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := m.sessions.Authenticate(bearerToken(r))
		if identity == nil {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admin requests with 403. Authentication is checked strictly before
// role.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := m.sessions.Authenticate(bearerToken(r))
		if identity == nil {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !identity.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}

// ContextWithIdentity attaches an identity the way the auth middleware does.
func ContextWithIdentity(ctx context.Context, identity *entities.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
