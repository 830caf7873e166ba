package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fishhunter29/andaman-planner-v3/internal/db"
	"github.com/fishhunter29/andaman-planner-v3/internal/refdata"
	"github.com/fishhunter29/andaman-planner-v3/internal/storage"
	"github.com/fishhunter29/andaman-planner-v3/internal/trip"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	ctx := context.Background()

	// ───────────────────────── DATASETS ─────────────────────────
	repo := datasetRepository(ctx)

	service, err := trip.NewService(ctx, repo)
	if err != nil {
		log.Fatal("Failed to load reference datasets:", err)
	}
	log.Println("Reference datasets loaded")

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler := trip.NewHandler(service)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/islands", handler.ListIslands)
		catalogGroup.GET("/locations", handler.ListLocations)
		catalogGroup.GET("/locations/:id/activities", handler.ListLocationActivities)
		catalogGroup.GET("/activities", handler.ListActivities)
		catalogGroup.GET("/hotels", handler.ListHotels)
	}

	// ───────────────────────── PRICING ROUTES ─────────────────────────
	r.POST("/estimate", handler.Estimate)
	r.POST("/fares/cab/find", handler.FindCabLeg)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("API running at http://localhost:" + port)
	r.Run(":" + port)
}

// datasetRepository picks the dataset source from the environment:
// plain JSON files (default), postgres, or R2 object storage.
func datasetRepository(ctx context.Context) refdata.Repository {
	switch os.Getenv("DATASET_SOURCE") {
	case "postgres":
		mustHaveEnv("DATABASE_URL")
		return refdata.NewPostgresRepository(db.ConnectPostgres())

	case "r2":
		mustHaveEnv("R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME")
		client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		return refdata.NewObjectRepository(client)

	default:
		dir := os.Getenv("DATASET_DIR")
		if dir == "" {
			dir = "./data"
		}
		return refdata.NewFileRepository(dir)
	}
}

func mustHaveEnv(keys ...string) {
	for _, k := range keys {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}
}
