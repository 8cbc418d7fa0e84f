package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/avaheights/society-portal/internal/adapters/cache"
	"github.com/avaheights/society-portal/internal/adapters/search"
	"github.com/avaheights/society-portal/internal/adapters/store"
	"github.com/avaheights/society-portal/internal/api/handlers"
	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/api/routes"
	"github.com/avaheights/society-portal/internal/application/services"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/domain/repositories"
	"github.com/avaheights/society-portal/internal/infrastructure/clients/postgres"
	"github.com/avaheights/society-portal/internal/infrastructure/clients/redis"
	"github.com/avaheights/society-portal/internal/infrastructure/clients/typesense"
	"github.com/avaheights/society-portal/internal/infrastructure/observability"
	"github.com/avaheights/society-portal/internal/infrastructure/snapshot"
	"github.com/avaheights/society-portal/pkg/config"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger("society-portal", cfg.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize Redis client when caching or the redis snapshot driver needs it
	var redisClient *redis.Client
	if cfg.Redis.Enabled || cfg.Storage.Driver == "redis" {
		redisClient, err = redis.NewClient(&cfg.Redis)
		if err != nil {
			if cfg.Storage.Driver == "redis" {
				log.Fatalf("Failed to initialize Redis client: %v", err)
			}
			log.Printf("Warning: Failed to initialize Redis client: %v", err)
			// Continue without Redis - the application can work without caching
		} else {
			defer redisClient.Close()
			log.Println("Redis client initialized successfully")
		}
	}

	// Select the snapshot backend
	var snapshots providers.SnapshotStore
	switch cfg.Storage.Driver {
	case "memory":
		snapshots = snapshot.NewMemoryStore()
	case "file":
		snapshots, err = snapshot.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file snapshot store: %v", err)
		}
	case "sqlite":
		sqliteStore, err := snapshot.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite snapshot store: %v", err)
		}
		defer sqliteStore.Close()
		snapshots = sqliteStore
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
		}
		defer pgClient.Close()
		snapshots, err = snapshot.NewPostgresStore(pgClient)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL snapshot store: %v", err)
		}
	case "redis":
		snapshots = snapshot.NewRedisStore(redisClient)
	}
	log.Printf("Snapshot store initialized (driver=%s)", cfg.Storage.Driver)

	// Initialize Typesense client
	var typesenseClient *typesense.Client
	if cfg.Typesense.Enabled {
		typesenseClient, err = typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Printf("Warning: Failed to initialize Typesense client: %v", err)
		} else {
			log.Println("Typesense client initialized successfully")
		}
	}

	// Initialize stores
	latency := store.WithLatency(cfg.Storage.Latency)

	sessionStore, err := store.NewSessionStore(ctx, snapshots)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}

	noticeStore, err := store.NewNoticeStore(ctx, snapshots, latency)
	if err != nil {
		log.Fatalf("Failed to initialize notice store: %v", err)
	}

	serviceRequestStore, err := store.NewServiceRequestStore(ctx, snapshots, latency)
	if err != nil {
		log.Fatalf("Failed to initialize service request store: %v", err)
	}

	rentalListingStore, err := store.NewRentalListingStore(ctx, snapshots, latency)
	if err != nil {
		log.Fatalf("Failed to initialize rental listing store: %v", err)
	}

	rentalQueryStore, err := store.NewRentalQueryStore(ctx, snapshots, latency)
	if err != nil {
		log.Fatalf("Failed to initialize rental query store: %v", err)
	}

	feedbackStore, err := store.NewFeedbackStore(ctx, snapshots, latency)
	if err != nil {
		log.Fatalf("Failed to initialize feedback store: %v", err)
	}

	var searchRepo repositories.NoticeSearchRepository
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)

		// Ensure schema exists
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		searchRepo = adapter
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize services
	sessionService := services.NewSessionService(sessionStore, cfg.Storage.Latency)
	noticeService := services.NewNoticeService(noticeStore, searchRepo)
	serviceRequestService := services.NewServiceRequestService(serviceRequestStore)
	rentalService := services.NewRentalService(rentalListingStore, rentalQueryStore)
	feedbackService := services.NewFeedbackService(feedbackStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessionService)
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	serviceRequestHandler := handlers.NewServiceRequestHandler(serviceRequestService)
	rentalHandler := handlers.NewRentalHandler(rentalService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	authMiddleware := middleware.NewAuthMiddleware(sessionService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		authHandler,
		noticeHandler,
		serviceRequestHandler,
		rentalHandler,
		feedbackHandler,
		authMiddleware,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
