package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jayadedental/clinic-api/internal/config"
	"github.com/jayadedental/clinic-api/internal/handlers"
	"github.com/jayadedental/clinic-api/internal/seed"
	"github.com/jayadedental/clinic-api/internal/services"
	"github.com/jayadedental/clinic-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to reach MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	db := client.Database(cfg.MongoDatabase)
	st := store.NewMongoStore(db)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// --- Default Staff Seeding ---
	// Must finish before the listener binds: a startup barrier, not a
	// background task.
	if err := seed.DefaultStaff(ctx, st.Users); err != nil {
		log.Fatalf("Failed to seed default staff: %v", err)
	}

	// --- Handlers & Router ---
	notificationSvc := services.NewNotificationService()
	h := handlers.NewHandler(st.Users, st.Appointments, st.Enquiries, notificationSvc, cfg.JWTSecret)
	r := h.Routes()

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
