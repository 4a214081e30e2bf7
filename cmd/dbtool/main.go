package main

import (
	"context"
	"log"
	"os"
	"route-recommendation-service/internal/adapters/geostore"
	"route-recommendation-service/internal/config"
	"route-recommendation-service/internal/platform/db"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("GEOCODE_SEED_PATH", "data/seeds/geocodes.json")
	if err := initAndSeed(context.Background(), db, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, db *sqlx.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := geostore.InitSchema(ctx, db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding geocodes...")
	if err := geostore.SeedFromJSON(ctx, db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
