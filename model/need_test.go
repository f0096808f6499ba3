package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNeed(required int) *Need {
	need := NewNeed("Asha Rahman", "Water Bottles", required)
	need.VolunteerPhone = "01712345678"
	need.UrgencyLevel = UrgencyHigh
	return need
}

func pledge(qty int) DonationSummary {
	return DonationSummary{
		DonationID:      "d1",
		DonorName:       "Kamal Uddin",
		DonorPhone:      "01898765432",
		PledgedQuantity: qty,
		DonationMethod:  "drop-off",
		PledgeDate:      Now(),
	}
}

func assertInvariant(t *testing.T, need *Need) {
	t.Helper()
	assert.Equal(t, need.RequiredQuantity, need.DonatedQuantity+need.RemainingQuantity)
	assert.GreaterOrEqual(t, need.RemainingQuantity, 0)
}

func TestNewNeedDefaults(t *testing.T) {
	need := newTestNeed(5)

	assert.Equal(t, 5, need.RemainingQuantity)
	assert.Equal(t, 0, need.DonatedQuantity)
	assert.Equal(t, NeedStatusActive, need.Status)
	assert.Equal(t, float64(0), need.ProgressPercentage())
	assert.NotNil(t, need.Donations)
	assert.Empty(t, need.Donations)
	assertInvariant(t, need)
}

func TestApplyPledgeExactFillFulfills(t *testing.T) {
	need := newTestNeed(5)

	require.NoError(t, need.ApplyPledge(pledge(5)))

	assert.Equal(t, 0, need.RemainingQuantity)
	assert.Equal(t, NeedStatusFulfilled, need.Status)
	assert.Equal(t, float64(100), need.ProgressPercentage())
	assertInvariant(t, need)
}

func TestApplyPledgeOverfillRejected(t *testing.T) {
	need := newTestNeed(5)

	err := need.ApplyPledge(pledge(6))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "5")
	assert.Equal(t, 5, need.RemainingQuantity)
	assert.Equal(t, NeedStatusActive, need.Status)
	assert.Empty(t, need.Donations)
	assertInvariant(t, need)
}

func TestApplyPledgePartialFillsAccumulate(t *testing.T) {
	need := newTestNeed(5)

	require.NoError(t, need.ApplyPledge(pledge(2)))
	require.NoError(t, need.ApplyPledge(pledge(2)))

	assert.Equal(t, 1, need.RemainingQuantity)
	assert.Equal(t, 4, need.DonatedQuantity)
	assert.Equal(t, NeedStatusActive, need.Status)
	assert.Len(t, need.Donations, 2)
	assertInvariant(t, need)
}

func TestApplyPledgeFulfilledNeverReverts(t *testing.T) {
	need := newTestNeed(3)
	require.NoError(t, need.ApplyPledge(pledge(3)))
	require.Equal(t, NeedStatusFulfilled, need.Status)

	err := need.ApplyPledge(pledge(1))

	require.Error(t, err)
	assert.Equal(t, NeedStatusFulfilled, need.Status)
	assertInvariant(t, need)
}

func TestProgressPercentageRounding(t *testing.T) {
	need := newTestNeed(3)
	require.NoError(t, need.ApplyPledge(pledge(1)))
	assert.Equal(t, 33.3, need.ProgressPercentage())

	require.NoError(t, need.ApplyPledge(pledge(1)))
	assert.Equal(t, 66.7, need.ProgressPercentage())
}

func TestProgressPercentageZeroRequired(t *testing.T) {
	need := newTestNeed(0)
	assert.Equal(t, float64(0), need.ProgressPercentage())
}

func TestTimeSinceLabels(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"just posted", 0, "Just posted"},
		{"under an hour", 45 * time.Minute, "Just posted"},
		{"ninety minutes", 90 * time.Minute, "1 hour ago"},
		{"three hours", 3 * time.Hour, "3 hours ago"},
		{"one day", 25 * time.Hour, "1 day ago"},
		{"two days", 49 * time.Hour, "2 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			need := newTestNeed(5)
			need.CreatedAt = NewTimestamp(now.Add(-tc.age))
			assert.Equal(t, tc.want, need.TimeSince(now))
		})
	}
}

func TestDonorNeedViewIncludesTimeSince(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	need := newTestNeed(5)
	need.CreatedAt = NewTimestamp(now.Add(-2 * time.Hour))

	view := NewDonorNeedView(*need, now)

	assert.Equal(t, "2 hours ago", view.TimeSinceText)
	assert.Equal(t, float64(0), view.Progress)

	// The volunteer view carries no age label.
	plain := NewNeedView(*need)
	assert.Empty(t, plain.TimeSinceText)
}

func TestDonationSummarySnapshot(t *testing.T) {
	donation := NewDonation("need-1", "Kamal Uddin", 4)
	donation.Key = "don-1"
	donation.DonorPhone = "01898765432"
	donation.DonationMethod = "courier"

	summary := donation.Summary()

	assert.Equal(t, "don-1", summary.DonationID)
	assert.Equal(t, 4, summary.PledgedQuantity)
	assert.Equal(t, donation.CreatedAt, summary.PledgeDate)
	assert.Equal(t, DonationStatusPledged, donation.Status)
}
