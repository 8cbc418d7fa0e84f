package routes

import (
	"net/http"

	"github.com/avaheights/society-portal/internal/api/handlers"
	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler           *handlers.AuthHandler
	noticeHandler         *handlers.NoticeHandler
	serviceRequestHandler *handlers.ServiceRequestHandler
	rentalHandler         *handlers.RentalHandler
	feedbackHandler       *handlers.FeedbackHandler

	authMiddleware  *middleware.AuthMiddleware
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	noticeHandler *handlers.NoticeHandler,
	serviceRequestHandler *handlers.ServiceRequestHandler,
	rentalHandler *handlers.RentalHandler,
	feedbackHandler *handlers.FeedbackHandler,
	authMiddleware *middleware.AuthMiddleware,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:           authHandler,
		noticeHandler:         noticeHandler,
		serviceRequestHandler: serviceRequestHandler,
		rentalHandler:         rentalHandler,
		feedbackHandler:       feedbackHandler,

		authMiddleware:  authMiddleware,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	auth := r.authMiddleware.RequireAuth
	admin := r.authMiddleware.RequireAdmin

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.Handle("GET /api/auth/session", auth(http.HandlerFunc(r.authHandler.Session)))

	// Notice endpoints. Caching sits behind the auth gate so a cached board
	// is never served to anonymous callers.
	r.mux.Handle("GET /api/notices", auth(r.cached(http.HandlerFunc(r.noticeHandler.ListNotices))))
	r.mux.Handle("GET /api/notices/search", auth(http.HandlerFunc(r.noticeHandler.SearchNotices)))
	r.mux.Handle("POST /api/notices", admin(r.invalidating("/api/notices", r.noticeHandler.PublishNotice)))

	// Service request endpoints
	r.mux.Handle("POST /api/service-requests", auth(http.HandlerFunc(r.serviceRequestHandler.SubmitRequest)))
	r.mux.Handle("GET /api/service-requests", admin(http.HandlerFunc(r.serviceRequestHandler.ListRequests)))
	r.mux.Handle("POST /api/service-requests/{id}/handled", admin(http.HandlerFunc(r.serviceRequestHandler.MarkHandled)))

	// Rental endpoints
	r.mux.Handle("POST /api/rentals/listings", auth(http.HandlerFunc(r.rentalHandler.SubmitListing)))
	r.mux.Handle("POST /api/rentals/queries", auth(http.HandlerFunc(r.rentalHandler.SubmitQuery)))
	r.mux.Handle("GET /api/rentals", admin(http.HandlerFunc(r.rentalHandler.ListRentals)))
	r.mux.Handle("POST /api/rentals/listings/{id}/handled", admin(http.HandlerFunc(r.rentalHandler.MarkListingHandled)))
	r.mux.Handle("POST /api/rentals/queries/{id}/handled", admin(http.HandlerFunc(r.rentalHandler.MarkQueryHandled)))

	// Feedback endpoints
	r.mux.Handle("POST /api/feedback", auth(http.HandlerFunc(r.feedbackHandler.SubmitFeedback)))
	r.mux.Handle("GET /api/feedback", admin(http.HandlerFunc(r.feedbackHandler.ListFeedback)))

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set on every response
	handler = middleware.CORSMiddleware(handler)

	return handler
}

// cached applies response caching to a route when a cache backend is
// configured.
func (r *Router) cached(next http.Handler) http.Handler {
	if r.cacheMiddleware == nil {
		return next
	}
	return r.cacheMiddleware.Middleware(next)
}

// invalidating drops the cached response for path after the wrapped write
// handler runs.
func (r *Router) invalidating(path string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		next(w, req)
		if r.cacheMiddleware != nil {
			r.cacheMiddleware.Invalidate(req, path)
		}
	})
}
