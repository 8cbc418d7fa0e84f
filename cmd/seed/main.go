package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/avaheights/society-portal/internal/adapters/store"
	"github.com/avaheights/society-portal/internal/application/services"
	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/infrastructure/clients/postgres"
	"github.com/avaheights/society-portal/internal/infrastructure/clients/redis"
	"github.com/avaheights/society-portal/internal/infrastructure/snapshot"
	"github.com/avaheights/society-portal/pkg/config"
)

// Seeds demo records through the same stores the API uses, so the data lands
// in whichever snapshot backend STORAGE_DRIVER selects.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var snapshots providers.SnapshotStore
	switch cfg.Storage.Driver {
	case "memory":
		log.Fatal("STORAGE_DRIVER=memory does not persist; seeding it is pointless")
	case "file":
		snapshots, err = snapshot.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("Failed to open file snapshot store: %v", err)
		}
	case "sqlite":
		sqliteStore, err := snapshot.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite snapshot store: %v", err)
		}
		defer sqliteStore.Close()
		snapshots = sqliteStore
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer pgClient.Close()
		snapshots, err = snapshot.NewPostgresStore(pgClient)
		if err != nil {
			log.Fatalf("Failed to open PostgreSQL snapshot store: %v", err)
		}
	case "redis":
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		snapshots = snapshot.NewRedisStore(redisClient)
	}

	ctx := context.Background()

	noticeStore, err := store.NewNoticeStore(ctx, snapshots)
	if err != nil {
		log.Fatalf("Failed to open notice store: %v", err)
	}
	serviceRequestStore, err := store.NewServiceRequestStore(ctx, snapshots)
	if err != nil {
		log.Fatalf("Failed to open service request store: %v", err)
	}
	listingStore, err := store.NewRentalListingStore(ctx, snapshots)
	if err != nil {
		log.Fatalf("Failed to open rental listing store: %v", err)
	}
	queryStore, err := store.NewRentalQueryStore(ctx, snapshots)
	if err != nil {
		log.Fatalf("Failed to open rental query store: %v", err)
	}
	feedbackStore, err := store.NewFeedbackStore(ctx, snapshots)
	if err != nil {
		log.Fatalf("Failed to open feedback store: %v", err)
	}

	noticeService := services.NewNoticeService(noticeStore, nil)
	serviceRequestService := services.NewServiceRequestService(serviceRequestStore)
	rentalService := services.NewRentalService(listingStore, queryStore)
	feedbackService := services.NewFeedbackService(feedbackStore)

	// 1. Seed Notices
	notices := []*entities.Notice{
		{Title: "Lift Maintenance", Content: "Tower B lift will be under maintenance on Saturday morning.", Date: time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)},
		{Title: "Diwali Celebration", Content: "Cultural committee invites all residents to the clubhouse at 7 PM.", Date: time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, n := range notices {
		if err := noticeService.Publish(ctx, n); err != nil {
			log.Printf("Failed to publish notice %s: %v", n.Title, err)
		}
	}

	// 2. Seed Service Requests
	requests := []*entities.ServiceRequest{
		{FlatNumber: "A-101", ServiceType: "plumbing", Date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), TimeSlot: "10:00-12:00", RequestedBy: "ramesh"},
		{FlatNumber: "B-204", ServiceType: "electrical", Date: time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC), TimeSlot: "14:00-16:00", RequestedBy: "sunita"},
	}
	for _, sr := range requests {
		if err := serviceRequestService.Submit(ctx, sr); err != nil {
			log.Printf("Failed to submit service request for %s: %v", sr.FlatNumber, err)
		}
	}

	// 3. Seed Rentals
	listings := []*entities.RentalListing{
		{FlatNumber: "C-302", FlatCode: "2BHK", ExpectedRent: 25000, ContactNumber: "9800011122", ListedBy: "mahesh"},
	}
	for _, l := range listings {
		if err := rentalService.SubmitListing(ctx, l); err != nil {
			log.Printf("Failed to submit listing for %s: %v", l.FlatNumber, err)
		}
	}

	queries := []*entities.RentalQuery{
		{Name: "Priya Nair", Size: "2BHK", Facing: "east", Budget: "20000-25000", FurnishingType: "semi-furnished", ContactEmail: "priya@example.com", RequestedBy: "priya"},
	}
	for _, q := range queries {
		if err := rentalService.SubmitQuery(ctx, q); err != nil {
			log.Printf("Failed to submit rental query from %s: %v", q.Name, err)
		}
	}

	// 4. Seed Feedback
	feedback := []*entities.FeedbackItem{
		{FlatNumber: "A-101", Message: "Garden lights near block A have been off for a week.", SubmittedBy: "ramesh"},
	}
	for _, f := range feedback {
		if err := feedbackService.Submit(ctx, f); err != nil {
			log.Printf("Failed to submit feedback from %s: %v", f.FlatNumber, err)
		}
	}

	log.Println("Seeding complete")
}
