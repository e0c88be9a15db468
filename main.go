package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/adsigel/wknd-works/config"
	"github.com/adsigel/wknd-works/database"
	"github.com/adsigel/wknd-works/handlers"
	"github.com/adsigel/wknd-works/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// Initialize database
	database.Connect(cfg.Database.URL)
	defer database.Close()

	if err := database.Migrate(context.Background()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Shared inventory snapshot cache
	handlers.InitCache(time.Duration(cfg.Forecast.SnapshotCacheTTLMinutes) * time.Minute)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(cfg.Server.Addr))
}
