// Package model - Need defines the relief need document and the pledge
// reconciliation rules applied against it.
package model

import (
	"fmt"
	"math"
	"time"
)

// NeedStatus represents the lifecycle state of a relief need
type NeedStatus string

const (
	// NeedStatusActive means the need is still accepting pledges.
	NeedStatusActive NeedStatus = "active"
	// NeedStatusFulfilled means the required quantity has been fully pledged.
	// A fulfilled need never returns to active.
	NeedStatusFulfilled NeedStatus = "fulfilled"
)

// Urgency levels are an open string enumeration; only "critical" carries
// special meaning (dashboard stats).
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

// Need represents a relief need posted by a volunteer.
type Need struct {
	Key               string            `json:"_key,omitempty"`
	ObjType           string            `json:"objtype,omitempty"`
	VolunteerName     string            `json:"volunteer_name"`
	VolunteerPhone    string            `json:"volunteer_phone"`
	VolunteerEmail    string            `json:"volunteer_email,omitempty"`
	VolunteerLocation string            `json:"volunteer_location,omitempty"`
	ItemName          string            `json:"item_name"`
	RequiredQuantity  int               `json:"required_quantity"`
	DonatedQuantity   int               `json:"donated_quantity"`
	RemainingQuantity int               `json:"remaining_quantity"`
	UrgencyLevel      string            `json:"urgency_level"`
	Description       string            `json:"description,omitempty"`
	Status            NeedStatus        `json:"status"`
	CreatedAt         Timestamp         `json:"created_at"`
	UpdatedAt         Timestamp         `json:"updated_at"`
	Donations         []DonationSummary `json:"donations"`
}

// DonationSummary is the point-in-time snapshot of a pledge embedded in the
// need's donations list. It intentionally duplicates the Donation record for
// display and never tracks later edits to it.
type DonationSummary struct {
	DonationID      string    `json:"donation_id"`
	DonorName       string    `json:"donor_name"`
	DonorPhone      string    `json:"donor_phone"`
	DonorEmail      string    `json:"donor_email,omitempty"`
	PledgedQuantity int       `json:"pledged_quantity"`
	DonationMethod  string    `json:"donation_method"`
	DeliveryNotes   string    `json:"delivery_notes,omitempty"`
	PledgeDate      Timestamp `json:"pledge_date"`
}

// NewNeed creates a new Need with default values. The donated and remaining
// quantities start at 0 and requiredQuantity so that
// donated + remaining == required holds from the first write.
func NewNeed(volunteerName, itemName string, requiredQuantity int) *Need {
	now := Now()
	return &Need{
		ObjType:           "Need",
		VolunteerName:     volunteerName,
		ItemName:          itemName,
		RequiredQuantity:  requiredQuantity,
		DonatedQuantity:   0,
		RemainingQuantity: requiredQuantity,
		Status:            NeedStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
		Donations:         []DonationSummary{},
	}
}

// ErrQuantityExceedsRemaining is returned when a pledge asks for more than
// the need has left. The message surfaces the remaining count to the donor.
type ErrQuantityExceedsRemaining struct {
	Remaining int
}

func (e *ErrQuantityExceedsRemaining) Error() string {
	return fmt.Sprintf("Only %d items remaining", e.Remaining)
}

// ApplyPledge reconciles a donor pledge against the need: it checks the
// remaining quantity, accumulates the donated quantity, floors the remaining
// quantity at 0, flips the status to fulfilled when nothing remains, and
// appends the pledge summary. The same transition is expressed by the guarded
// AQL update in the donor module; this in-memory form backs the seed tool and
// the tests.
func (n *Need) ApplyPledge(summary DonationSummary) error {
	if n.Status != NeedStatusActive {
		return fmt.Errorf("need is not active")
	}
	if summary.PledgedQuantity > n.RemainingQuantity {
		return &ErrQuantityExceedsRemaining{Remaining: n.RemainingQuantity}
	}

	n.DonatedQuantity += summary.PledgedQuantity
	remaining := n.RequiredQuantity - n.DonatedQuantity
	if remaining < 0 {
		remaining = 0
	}
	n.RemainingQuantity = remaining

	if remaining <= 0 {
		n.Status = NeedStatusFulfilled
	}

	n.Donations = append(n.Donations, summary)
	n.UpdatedAt = summary.PledgeDate
	return nil
}

// ProgressPercentage returns 100 * donated / required rounded to one decimal,
// or 0 when the required quantity is 0.
func (n *Need) ProgressPercentage() float64 {
	if n.RequiredQuantity <= 0 {
		return 0
	}
	progress := float64(n.DonatedQuantity) / float64(n.RequiredQuantity) * 100
	return math.Round(progress*10) / 10
}

// TimeSince returns a coarse human-readable age label for the need relative
// to now: full days first, then full hours, otherwise "Just posted".
func (n *Need) TimeSince(now time.Time) string {
	diff := now.Sub(n.CreatedAt.Time)

	days := int(diff.Hours() / 24)
	hours := int(diff.Hours()) % 24

	switch {
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	case days == 1:
		return "1 day ago"
	case hours > 1:
		return fmt.Sprintf("%d hours ago", hours)
	case hours == 1:
		return "1 hour ago"
	default:
		return "Just posted"
	}
}

// NeedView is a Need serialized for listings, with the derived display fields
// attached. TimeSince is only populated for the donor listing.
type NeedView struct {
	Need
	Progress      float64 `json:"progress_percentage"`
	TimeSinceText string  `json:"time_since,omitempty"`
}

// NewNeedView derives the display fields for a need.
func NewNeedView(n Need) NeedView {
	return NeedView{
		Need:     n,
		Progress: n.ProgressPercentage(),
	}
}

// NewDonorNeedView derives the display fields for the donor listing,
// including the age label.
func NewDonorNeedView(n Need, now time.Time) NeedView {
	view := NewNeedView(n)
	view.TimeSinceText = n.TimeSince(now)
	return view
}
