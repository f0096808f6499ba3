package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampMarshalsRFC3339UTC(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 8, 30, 9, 30, 0, 0, time.FixedZone("BST", 6*3600)))

	data, err := json.Marshal(ts)

	require.NoError(t, err)
	assert.Equal(t, `"2026-08-30T03:30:00Z"`, string(data))
}

func TestTimestampUnmarshalFormats(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2026-08-30T03:30:00Z"`, time.Date(2026, 8, 30, 3, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", `"2026-08-30T03:30:00.123456789Z"`, time.Date(2026, 8, 30, 3, 30, 0, 123456789, time.UTC)},
		{"bare iso", `"2026-08-30T03:30:00"`, time.Date(2026, 8, 30, 3, 30, 0, 0, time.UTC)},
		{"bare iso micros", `"2026-08-30T03:30:00.500000"`, time.Date(2026, 8, 30, 3, 30, 0, 500000000, time.UTC)},
		{"epoch seconds", `1767063000`, time.Unix(1767063000, 0).UTC()},
		{"epoch millis", `1767063000000`, time.UnixMilli(1767063000000).UTC()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.in), &ts))
			assert.True(t, tc.want.Equal(ts.Time), "got %v want %v", ts.Time, tc.want)
		})
	}
}

func TestTimestampUnmarshalGarbageFallsBackToNow(t *testing.T) {
	var ts Timestamp
	before := time.Now().UTC()

	require.NoError(t, json.Unmarshal([]byte(`"not a timestamp"`), &ts))

	after := time.Now().UTC()
	assert.False(t, ts.Before(before))
	assert.False(t, ts.After(after))

	// A malformed created_at therefore reads as "Just posted".
	need := NewNeed("x", "y", 1)
	need.CreatedAt = ts
	assert.Equal(t, "Just posted", need.TimeSince(time.Now().UTC()))
}
