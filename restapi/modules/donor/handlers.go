package donor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/gofiber/fiber/v2"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/model"
)

// GetNeeds handles GET requests for the donor listing: active needs that
// still have something left to pledge, optionally filtered by urgency and a
// case-insensitive item-name search.
func GetNeeds(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		urgency := c.Query("urgency")
		search := c.Query("search")

		query := `
			FOR n IN relief_needs
				FILTER n.status == "active" AND n.remaining_quantity > 0
		`
		bindVars := map[string]interface{}{}

		// "all" is the filter's sentinel for no urgency restriction
		if urgency != "" && urgency != "all" {
			query += `		FILTER n.urgency_level == @urgency
`
			bindVars["urgency"] = urgency
		}

		if search != "" {
			query += `		FILTER CONTAINS(LOWER(n.item_name), LOWER(@search))
`
			bindVars["search"] = search
		}

		query += `		SORT n.created_at DESC
				RETURN n
		`

		ctx := context.Background()
		cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
			BindVars: bindVars,
		})
		if err != nil {
			log.Printf("Error fetching donor needs: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}
		defer cursor.Close()

		now := time.Now().UTC()
		views := make([]model.NeedView, 0)
		for cursor.HasMore() {
			var need model.Need
			if _, err := cursor.ReadDocument(ctx, &need); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
			}
			views = append(views, model.NewDonorNeedView(need, now))
		}

		return c.JSON(model.NeedListResponse{
			Success:    true,
			Needs:      views,
			TotalCount: len(views),
		})
	}
}

// pledgeQuery inserts the donation and updates the need in a single AQL
// data-modification query. The FILTER guard makes the remaining-quantity
// check and both writes one atomic step, so concurrent pledges cannot
// over-donate and a failure cannot leave an orphaned donation.
const pledgeQuery = `
	FOR n IN relief_needs
		FILTER n._key == @need_key
		   AND n.status == "active"
		   AND n.remaining_quantity >= @quantity
		LIMIT 1
		INSERT {
			objtype: "Donation",
			need_id: n._key,
			donor_name: @donor_name,
			donor_phone: @donor_phone,
			donor_email: @donor_email,
			pledged_quantity: @quantity,
			donation_method: @donation_method,
			delivery_notes: @delivery_notes,
			status: "pledged",
			volunteer_name: n.volunteer_name,
			volunteer_phone: n.volunteer_phone,
			item_name: n.item_name,
			created_at: @now,
			updated_at: @now
		} INTO donations
		LET donation = NEW
		LET donated = n.donated_quantity + @quantity
		LET remaining = MAX([0, n.required_quantity - donated])
		UPDATE n WITH {
			donated_quantity: donated,
			remaining_quantity: remaining,
			status: remaining <= 0 ? "fulfilled" : "active",
			donations: PUSH(n.donations, {
				donation_id: donation._key,
				donor_name: @donor_name,
				donor_phone: @donor_phone,
				donor_email: @donor_email,
				pledged_quantity: @quantity,
				donation_method: @donation_method,
				delivery_notes: @delivery_notes,
				pledge_date: @now
			}),
			updated_at: @now
		} IN relief_needs
		RETURN {
			donation_id: donation._key,
			remaining_quantity: remaining,
			volunteer_contact: {
				name: n.volunteer_name,
				phone: n.volunteer_phone,
				email: n.volunteer_email != null ? n.volunteer_email : "",
				location: n.volunteer_location != null ? n.volunteer_location : ""
			}
		}
`

// pledgeResult is the shape returned by pledgeQuery.
type pledgeResult struct {
	DonationID        string                 `json:"donation_id"`
	RemainingQuantity int                    `json:"remaining_quantity"`
	VolunteerContact  model.VolunteerContact `json:"volunteer_contact"`
}

// PostDonation handles POST requests for pledging a donation against a need.
func PostDonation(db database.DBConnection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req DonationRequest

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.NewErrorResponse("Invalid request body: " + err.Error()))
		}

		req.Normalize()
		if err := req.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.NewErrorResponse(err.Error()))
		}

		ctx := context.Background()
		now := time.Now().UTC().Format(time.RFC3339)

		cursor, err := db.Database.Query(ctx, pledgeQuery, &arangodb.QueryOptions{
			BindVars: map[string]interface{}{
				"need_key":        req.NeedID,
				"quantity":        req.PledgedQuantity,
				"donor_name":      req.DonorName,
				"donor_phone":     req.DonorPhone,
				"donor_email":     req.DonorEmail,
				"donation_method": req.DonationMethod,
				"delivery_notes":  req.DeliveryNotes,
				"now":             now,
			},
		})
		if err != nil {
			log.Printf("Error processing donation: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
		}
		defer cursor.Close()

		if cursor.HasMore() {
			var result pledgeResult
			if _, err := cursor.ReadDocument(ctx, &result); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
			}

			return c.Status(fiber.StatusCreated).JSON(DonationResponse{
				Success:           true,
				Message:           "Donation pledged successfully!",
				DonationID:        result.DonationID,
				RemainingQuantity: result.RemainingQuantity,
				VolunteerContact:  result.VolunteerContact,
			})
		}

		// The guard matched nothing: distinguish an absent or inactive need
		// from one with too little remaining.
		return rejectPledge(ctx, c, db, req.NeedID)
	}
}

// rejectPledge reads the need to pick the right rejection for a pledge whose
// guarded write matched nothing.
func rejectPledge(ctx context.Context, c *fiber.Ctx, db database.DBConnection, needID string) error {
	query := `
		FOR n IN relief_needs
			FILTER n._key == @need_key
			LIMIT 1
			RETURN { status: n.status, remaining_quantity: n.remaining_quantity }
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"need_key": needID,
		},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return c.Status(fiber.StatusNotFound).JSON(model.NewErrorResponse("Need not found or inactive"))
	}

	var state struct {
		Status            model.NeedStatus `json:"status"`
		RemainingQuantity int              `json:"remaining_quantity"`
	}
	if _, err := cursor.ReadDocument(ctx, &state); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.NewErrorResponse(err.Error()))
	}

	if state.Status != model.NeedStatusActive {
		return c.Status(fiber.StatusNotFound).JSON(model.NewErrorResponse("Need not found or inactive"))
	}

	return c.Status(fiber.StatusBadRequest).JSON(model.NewErrorResponse(
		fmt.Sprintf("Only %d items remaining", state.RemainingQuantity)))
}
