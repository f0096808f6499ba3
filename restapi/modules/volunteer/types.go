// Package volunteer implements the volunteer-facing need operations:
// posting a need, listing own needs, and deleting a need.
package volunteer

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report validation failures by JSON field name so the error message
	// matches what the client actually sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// CreateNeedRequest is the body for POST /api/volunteer/needs. Field names
// follow the volunteer form's camelCase wire format.
type CreateNeedRequest struct {
	VolunteerName     string `json:"volunteerName" validate:"required"`
	VolunteerPhone    string `json:"volunteerPhone" validate:"required"`
	VolunteerEmail    string `json:"volunteerEmail" validate:"omitempty,email"`
	VolunteerLocation string `json:"volunteerLocation"`
	ItemName          string `json:"itemName" validate:"required"`
	Quantity          int    `json:"quantity" validate:"required,gt=0"`
	Urgency           string `json:"urgency" validate:"required"`
	Description       string `json:"description"`
}

// Normalize trims surrounding whitespace from all string fields before
// validation and storage.
func (r *CreateNeedRequest) Normalize() {
	r.VolunteerName = strings.TrimSpace(r.VolunteerName)
	r.VolunteerPhone = strings.TrimSpace(r.VolunteerPhone)
	r.VolunteerEmail = strings.TrimSpace(r.VolunteerEmail)
	r.VolunteerLocation = strings.TrimSpace(r.VolunteerLocation)
	r.ItemName = strings.TrimSpace(r.ItemName)
	r.Urgency = strings.TrimSpace(r.Urgency)
	r.Description = strings.TrimSpace(r.Description)
}

// Validate checks the request after normalization. The returned error message
// is safe to surface to the client.
func (r *CreateNeedRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errAs, ok := err.(validator.ValidationErrors); ok {
			verrs = errAs
		}
		if len(verrs) > 0 {
			return fmt.Errorf("Missing or invalid field: %s", verrs[0].Field())
		}
		return err
	}

	if len(r.VolunteerPhone) < 10 {
		return fmt.Errorf("volunteerPhone must be at least 10 characters")
	}

	return nil
}

// CreateNeedResponse is the body returned after a successful need creation.
type CreateNeedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	NeedID  string `json:"need_id"`
}

// DeleteNeedResponse is the body returned after a successful need deletion.
type DeleteNeedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
