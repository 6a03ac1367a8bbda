package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/threadline/storefront-api/middleware"
	"github.com/threadline/storefront-api/routes"
	"github.com/threadline/storefront-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init document store
	s := initStore()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore connects the document store. The API still serves without a
// database (the diagnostics endpoint reports the outage), so a failed
// connection is logged rather than fatal.
func initStore() store.Store {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, using in-memory store")
		return store.NewMemory(dbName())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := store.Connect(ctx, databaseURL, dbName())
	if err != nil {
		log.Printf("❌ DB connection failed: %v", err)
		return s
	}
	log.Printf("✅ Connected to database %q", s.Name())
	return s
}

func dbName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "ecommerce"
}
