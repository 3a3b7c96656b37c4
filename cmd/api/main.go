package main

import (
	"log"
	"os"
	"time"

	"github.com/01moynul/stocktrack-golang/internal/database"
	"github.com/01moynul/stocktrack-golang/internal/handlers"
	"github.com/01moynul/stocktrack-golang/internal/routes"
	"github.com/01moynul/stocktrack-golang/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// 2. --- Application Setup ---
	inventory := store.New(db)
	app := &handlers.Handlers{
		Store: inventory,
	}

	// 3. --- Background Worker ---
	// Logs products running low once an hour so restocks do not go unnoticed.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			low, err := inventory.LowStock(store.DefaultLowStockThreshold)
			if err != nil {
				log.Printf("Low-stock watcher: query failed: %v", err)
				continue
			}
			for _, p := range low {
				log.Printf("Low stock: %q (id %d) has %d left", p.Name, p.ID, p.Stock)
			}
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting StockTrack API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
