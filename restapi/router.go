// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/model"
	"github.com/aidconnect/relief-backend/restapi/modules/dashboard"
	"github.com/aidconnect/relief-backend/restapi/modules/donor"
	"github.com/aidconnect/relief-backend/restapi/modules/volunteer"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, db database.DBConnection, schema graphql.Schema) {
	// API Group /api
	api := app.Group("/api")

	// Volunteer routes
	volunteerGroup := api.Group("/volunteer")
	volunteerGroup.Post("/needs", volunteer.PostNeed(db))
	volunteerGroup.Get("/needs", volunteer.GetNeeds(db))
	volunteerGroup.Delete("/needs/:need_id", volunteer.DeleteNeed(db))

	// Donor routes
	donorGroup := api.Group("/donor")
	donorGroup.Get("/needs", donor.GetNeeds(db))
	donorGroup.Post("/donate", donor.PostDonation(db))

	// Dashboard route
	api.Get("/dashboard", dashboard.GetDashboard(db))

	// Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"message": "AidConnect API is running",
		})
	})

	// GraphQL read-only query surface
	api.Post("/graphql", GraphQLHandler(schema))

	// Unmatched routes get a generic JSON 404 body
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(model.NewErrorResponse("Endpoint not found"))
	})
}
