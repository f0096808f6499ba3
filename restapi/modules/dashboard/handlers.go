package dashboard

import (
	"context"
	"log"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/gofiber/fiber/v2"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/model"
)

// Response is the body for GET /api/dashboard.
type Response struct {
	Success        bool             `json:"success"`
	Stats          Stats            `json:"stats"`
	ActiveNeeds    []model.NeedView `json:"active_needs"`
	FulfilledNeeds []model.NeedView `json:"fulfilled_needs"`
}

// GetDashboard handles GET requests for the dashboard aggregation: all
// active needs, all fulfilled needs, and the donation total. There is no
// pagination anywhere in this API.
func GetDashboard(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		active, err := needsByStatus(ctx, db, model.NeedStatusActive)
		if err != nil {
			log.Printf("Error fetching dashboard data: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}

		fulfilled, err := needsByStatus(ctx, db, model.NeedStatusFulfilled)
		if err != nil {
			log.Printf("Error fetching dashboard data: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}

		totalDonations, err := countDonations(ctx, db)
		if err != nil {
			log.Printf("Error counting donations: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}

		return c.JSON(Response{
			Success:        true,
			Stats:          ComputeStats(active, fulfilled, totalDonations),
			ActiveNeeds:    toViews(active),
			FulfilledNeeds: toViews(fulfilled),
		})
	}
}

func needsByStatus(ctx context.Context, db database.DBConnection, status model.NeedStatus) ([]model.Need, error) {
	query := `
		FOR n IN relief_needs
			FILTER n.status == @status
			SORT n.created_at DESC
			RETURN n
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"status": string(status),
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	needs := make([]model.Need, 0)
	for cursor.HasMore() {
		var need model.Need
		if _, err := cursor.ReadDocument(ctx, &need); err != nil {
			return nil, err
		}
		needs = append(needs, need)
	}

	return needs, nil
}

func countDonations(ctx context.Context, db database.DBConnection) (int, error) {
	query := `
		FOR d IN donations
			COLLECT WITH COUNT INTO total
			RETURN total
	`
	cursor, err := db.Database.Query(ctx, query, nil)
	if err != nil {
		return 0, err
	}
	defer cursor.Close()

	total := 0
	if cursor.HasMore() {
		if _, err := cursor.ReadDocument(ctx, &total); err != nil {
			return 0, err
		}
	}

	return total, nil
}

func toViews(needs []model.Need) []model.NeedView {
	views := make([]model.NeedView, 0, len(needs))
	for _, n := range needs {
		views = append(views, model.NewNeedView(n))
	}
	return views
}
