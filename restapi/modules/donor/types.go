// Package donor implements the donor-facing operations: browsing open needs
// and pledging a donation against one.
package donor

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aidconnect/relief-backend/model"
)

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// DonationRequest is the body for POST /api/donor/donate.
type DonationRequest struct {
	NeedID          string `json:"need_id" validate:"required"`
	DonorName       string `json:"donor_name" validate:"required"`
	DonorPhone      string `json:"donor_phone" validate:"required"`
	DonorEmail      string `json:"donor_email" validate:"omitempty,email"`
	PledgedQuantity int    `json:"pledged_quantity" validate:"required,gt=0"`
	DonationMethod  string `json:"donation_method" validate:"required"`
	DeliveryNotes   string `json:"delivery_notes"`
}

// Normalize trims surrounding whitespace from all string fields.
func (r *DonationRequest) Normalize() {
	r.NeedID = strings.TrimSpace(r.NeedID)
	r.DonorName = strings.TrimSpace(r.DonorName)
	r.DonorPhone = strings.TrimSpace(r.DonorPhone)
	r.DonorEmail = strings.TrimSpace(r.DonorEmail)
	r.DonationMethod = strings.TrimSpace(r.DonationMethod)
	r.DeliveryNotes = strings.TrimSpace(r.DeliveryNotes)
}

// Validate checks the request after normalization.
func (r *DonationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("Missing or invalid field: %s", verrs[0].Field())
		}
		return err
	}
	return nil
}

// DonationResponse is the body returned after a successful pledge. The
// volunteer contact block lets the donor coordinate delivery.
type DonationResponse struct {
	Success           bool                   `json:"success"`
	Message           string                 `json:"message"`
	DonationID        string                 `json:"donation_id"`
	RemainingQuantity int                    `json:"remaining_quantity"`
	VolunteerContact  model.VolunteerContact `json:"volunteer_contact"`
}
