package model

// DonationStatusPledged is the only status a donation ever holds; no further
// lifecycle is modeled.
const DonationStatusPledged = "pledged"

// Donation represents a donor's pledge against a specific need. A donation is
// written once and never mutated or deleted; the need's embedded summary list
// is the display-side copy.
type Donation struct {
	Key             string    `json:"_key,omitempty"`
	ObjType         string    `json:"objtype,omitempty"`
	NeedID          string    `json:"need_id"`
	DonorName       string    `json:"donor_name"`
	DonorPhone      string    `json:"donor_phone"`
	DonorEmail      string    `json:"donor_email,omitempty"`
	PledgedQuantity int       `json:"pledged_quantity"`
	DonationMethod  string    `json:"donation_method"`
	DeliveryNotes   string    `json:"delivery_notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       Timestamp `json:"created_at"`
	UpdatedAt       Timestamp `json:"updated_at"`

	// Copied from the referenced need at pledge time for display convenience.
	VolunteerName  string `json:"volunteer_name,omitempty"`
	VolunteerPhone string `json:"volunteer_phone,omitempty"`
	ItemName       string `json:"item_name,omitempty"`
}

// NewDonation creates a new Donation with default values.
func NewDonation(needID, donorName string, pledgedQuantity int) *Donation {
	now := Now()
	return &Donation{
		ObjType:         "Donation",
		NeedID:          needID,
		DonorName:       donorName,
		PledgedQuantity: pledgedQuantity,
		Status:          DonationStatusPledged,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Summary returns the point-in-time snapshot embedded in the need's
// donations list.
func (d *Donation) Summary() DonationSummary {
	return DonationSummary{
		DonationID:      d.Key,
		DonorName:       d.DonorName,
		DonorPhone:      d.DonorPhone,
		DonorEmail:      d.DonorEmail,
		PledgedQuantity: d.PledgedQuantity,
		DonationMethod:  d.DonationMethod,
		DeliveryNotes:   d.DeliveryNotes,
		PledgeDate:      d.CreatedAt,
	}
}
