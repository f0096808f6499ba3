package donor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDonationRequest() DonationRequest {
	return DonationRequest{
		NeedID:          "12345",
		DonorName:       "Karim Uddin",
		DonorPhone:      "01812345678",
		PledgedQuantity: 5,
		DonationMethod:  "drop-off",
	}
}

func TestDonationRequestValid(t *testing.T) {
	req := validDonationRequest()
	req.Normalize()
	assert.NoError(t, req.Validate())
}

func TestDonationRequestMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DonationRequest)
		field  string
	}{
		{"missing need id", func(r *DonationRequest) { r.NeedID = "" }, "need_id"},
		{"missing donor name", func(r *DonationRequest) { r.DonorName = "" }, "donor_name"},
		{"missing donor phone", func(r *DonationRequest) { r.DonorPhone = "" }, "donor_phone"},
		{"missing method", func(r *DonationRequest) { r.DonationMethod = "" }, "donation_method"},
		{"zero quantity", func(r *DonationRequest) { r.PledgedQuantity = 0 }, "pledged_quantity"},
		{"negative quantity", func(r *DonationRequest) { r.PledgedQuantity = -1 }, "pledged_quantity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validDonationRequest()
			tc.mutate(&req)
			req.Normalize()

			err := req.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestDonationRequestWhitespaceOnlyField(t *testing.T) {
	req := validDonationRequest()
	req.DonorName = "    "
	req.Normalize()

	err := req.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "donor_name")
}

func TestDonationRequestInvalidEmail(t *testing.T) {
	req := validDonationRequest()
	req.DonorEmail = "karim@"
	req.Normalize()

	err := req.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "donor_email")
}
