package main

import (
	"context"
	"log"

	"github.com/maxcopy/maxcopy-backend/internal/ai"
	"github.com/maxcopy/maxcopy-backend/internal/config"
	"github.com/maxcopy/maxcopy-backend/internal/database"
	"github.com/maxcopy/maxcopy-backend/internal/handlers"
	"github.com/maxcopy/maxcopy-backend/internal/repository"
	"github.com/maxcopy/maxcopy-backend/internal/routes"
	"github.com/maxcopy/maxcopy-backend/internal/service"
)

func main() {
	cfg := config.Load()
	if cfg.DSN == "" {
		log.Fatal("DB_DSN environment variable is not set")
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Listing generation defaults to the deterministic stub; a Gemini key
	// switches in the real provider without changing anything downstream.
	var generator ai.ListingGenerator = ai.StubGenerator{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini generator: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	}

	svc := service.NewProductService(
		repository.NewProductRepository(db),
		repository.NewAIContentRepository(db),
		generator,
		cfg.AIModelName,
	)

	app := &handlers.Handlers{Service: svc}
	router := routes.SetupRouter(app, cfg.CORSAllowOrigins)

	log.Printf("Starting MaxCopy API server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
