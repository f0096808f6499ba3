package volunteer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aidconnect/relief-backend/model"
)

func TestDuplicateCutoff(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	cutoff := duplicateCutoff(now)

	assert.Equal(t, now.Add(-time.Hour), cutoff)
	// A need created 30 minutes ago is inside the window, one created 2
	// hours ago is not.
	assert.False(t, now.Add(-30*time.Minute).Before(cutoff))
	assert.True(t, now.Add(-2*time.Hour).Before(cutoff))
}

func duplicateCandidate(createdAt time.Time) model.Need {
	n := model.NewNeed("Asha Rahman", "Water Bottles", 20)
	n.VolunteerPhone = "01712345678"
	n.CreatedAt = model.NewTimestamp(createdAt)
	return *n
}

func TestIsDuplicateOfWindow(t *testing.T) {
	req := validCreateRequest()
	req.Normalize()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cutoff := duplicateCutoff(now)

	inside := duplicateCandidate(now.Add(-30 * time.Minute))
	outside := duplicateCandidate(now.Add(-2 * time.Hour))
	atCutoff := duplicateCandidate(cutoff)

	assert.True(t, req.isDuplicateOf(inside, cutoff))
	assert.False(t, req.isDuplicateOf(outside, cutoff))
	assert.True(t, req.isDuplicateOf(atCutoff, cutoff))
}

func TestIsDuplicateOfTrimmedFields(t *testing.T) {
	req := validCreateRequest()
	req.Normalize()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cutoff := duplicateCutoff(now)

	// Stored needs with stray whitespace still match after trimming.
	padded := duplicateCandidate(now.Add(-10 * time.Minute))
	padded.VolunteerName = "  Asha Rahman "
	padded.ItemName = " Water Bottles  "
	padded.VolunteerPhone = " 01712345678 "
	assert.True(t, req.isDuplicateOf(padded, cutoff))

	otherItem := duplicateCandidate(now.Add(-10 * time.Minute))
	otherItem.ItemName = "Blankets"
	assert.False(t, req.isDuplicateOf(otherItem, cutoff))

	otherVolunteer := duplicateCandidate(now.Add(-10 * time.Minute))
	otherVolunteer.VolunteerName = "Karim Uddin"
	assert.False(t, req.isDuplicateOf(otherVolunteer, cutoff))
}

func TestIsDuplicateOfIgnoresInactive(t *testing.T) {
	req := validCreateRequest()
	req.Normalize()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cutoff := duplicateCutoff(now)

	fulfilled := duplicateCandidate(now.Add(-10 * time.Minute))
	fulfilled.Status = model.NeedStatusFulfilled

	assert.False(t, req.isDuplicateOf(fulfilled, cutoff))
}
