package volunteer

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/gofiber/fiber/v2"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/model"
)

// duplicateWindow is how far back the advisory duplicate check looks for an
// identical active need.
const duplicateWindow = time.Hour

// duplicateCutoff returns the earliest created_at an active need can carry
// and still count as a duplicate of a submission made at now.
func duplicateCutoff(now time.Time) time.Time {
	return now.UTC().Add(-duplicateWindow)
}

// isDuplicateOf reports whether an existing need duplicates the request:
// same trimmed volunteer name, phone, and item name, still active, and
// created at or after the cutoff.
func (r *CreateNeedRequest) isDuplicateOf(n model.Need, cutoff time.Time) bool {
	if n.Status != model.NeedStatusActive {
		return false
	}
	if n.CreatedAt.Before(cutoff) {
		return false
	}
	return strings.TrimSpace(n.VolunteerName) == r.VolunteerName &&
		strings.TrimSpace(n.VolunteerPhone) == r.VolunteerPhone &&
		strings.TrimSpace(n.ItemName) == r.ItemName
}

// PostNeed handles POST requests for creating a relief need.
func PostNeed(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateNeedRequest

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.NewErrorResponse("Invalid request body: " + err.Error()))
		}

		req.Normalize()
		if err := req.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.NewErrorResponse(err.Error()))
		}

		ctx := context.Background()

		// Advisory duplicate suppression: query-then-decide, no enforced
		// exclusivity. Concurrent identical submissions can still both land.
		cutoff := duplicateCutoff(time.Now())
		candidates, err := database.FindRecentActiveNeeds(ctx, db.Database, req.VolunteerPhone, cutoff)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse("Failed to check for duplicate need: " + err.Error()))
		}
		for _, candidate := range candidates {
			if req.isDuplicateOf(candidate, cutoff) {
				return c.Status(fiber.StatusConflict).JSON(model.NewErrorResponse("Duplicate need: an identical active need was posted within the last hour"))
			}
		}

		need := model.NewNeed(req.VolunteerName, req.ItemName, req.Quantity)
		need.VolunteerPhone = req.VolunteerPhone
		need.VolunteerEmail = req.VolunteerEmail
		need.VolunteerLocation = req.VolunteerLocation
		need.UrgencyLevel = req.Urgency
		need.Description = req.Description

		meta, err := db.Collections[database.NeedsCollection].CreateDocument(ctx, need)
		if err != nil {
			log.Printf("Error creating need: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}

		return c.Status(fiber.StatusCreated).JSON(CreateNeedResponse{
			Success: true,
			Message: "Relief need posted successfully!",
			NeedID:  meta.Key,
		})
	}
}

// GetNeeds handles GET requests for the volunteer's own need listing,
// filtered by volunteer name and status.
func GetNeeds(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		volunteerName := c.Query("volunteer")
		status := c.Query("status", string(model.NeedStatusActive))

		query := `
			FOR n IN relief_needs
				FILTER n.status == @status
		`
		bindVars := map[string]interface{}{
			"status": status,
		}

		if volunteerName != "" {
			query += `		FILTER n.volunteer_name == @volunteer_name
`
			bindVars["volunteer_name"] = volunteerName
		}

		query += `		SORT n.created_at DESC
				RETURN n
		`

		ctx := context.Background()
		cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
			BindVars: bindVars,
		})
		if err != nil {
			log.Printf("Error fetching volunteer needs: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}
		defer cursor.Close()

		views := make([]model.NeedView, 0)
		for cursor.HasMore() {
			var need model.Need
			if _, err := cursor.ReadDocument(ctx, &need); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
			}
			views = append(views, model.NewNeedView(need))
		}

		return c.JSON(model.NeedListResponse{
			Success:    true,
			Needs:      views,
			TotalCount: len(views),
		})
	}
}

// DeleteNeed handles DELETE requests for removing a need outright. Donations
// referencing the need are left in place as orphaned records.
func DeleteNeed(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		needID := c.Params("need_id")

		query := `
			FOR n IN relief_needs
				FILTER n._key == @need_key
				REMOVE n IN relief_needs
				RETURN OLD._key
		`
		ctx := context.Background()
		cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
			BindVars: map[string]interface{}{
				"need_key": needID,
			},
		})
		if err != nil {
			log.Printf("Error deleting need: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}
		defer cursor.Close()

		if !cursor.HasMore() {
			return c.Status(fiber.StatusNotFound).JSON(model.NewErrorResponse("Need not found"))
		}

		return c.JSON(DeleteNeedResponse{
			Success: true,
			Message: "Need deleted successfully",
		})
	}
}
