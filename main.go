// package main provides the entry point for the AidConnect relief-matching
// backend, a JSON API that matches volunteers posting relief-item needs with
// donors pledging quantities against them.
package main

import (
	"log"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/internal/api"
)

func main() {
	// Initialize database connection
	db := database.InitializeDatabase()

	// Create Fiber app with REST and GraphQL routes
	app := api.NewFiberApp(db)

	// Get port from environment or default to 5000
	port := database.GetEnvDefault("MS_PORT", "5000")

	// Start server
	log.Printf("Starting server on port %s", port)
	log.Printf("API base available at /api")
	log.Printf("GraphQL endpoint available at /api/graphql")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
