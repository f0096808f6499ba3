// Package model defines the data structures used by the relief-matching
// backend, including needs, donations, and their API shapes.
package model

import (
	"encoding/json"
	"time"
)

// timeLayouts are the accepted formats for stored timestamps, in the order
// they are tried. Documents written by this service use RFC 3339 UTC, but
// older records may carry bare ISO-8601 strings without a zone offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Timestamp wraps time.Time with tolerant JSON decoding. A value that cannot
// be parsed decodes as the current time, so a malformed created_at surfaces as
// "Just posted" instead of failing the whole listing.
type Timestamp struct {
	time.Time
}

// Now returns the current UTC time as a Timestamp.
func Now() Timestamp {
	return Timestamp{time.Now().UTC()}
}

// NewTimestamp wraps t as a UTC Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

// MarshalJSON encodes the timestamp as an RFC 3339 UTC string. The fixed
// format keeps lexicographic AQL comparisons on stored timestamps aligned
// with chronological order.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// UnmarshalJSON decodes an ISO-8601 string or a numeric epoch value. On parse
// failure the timestamp falls back to the current time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		t.Time = time.Now().UTC()
		return nil
	}

	var epoch float64
	if err := json.Unmarshal(data, &epoch); err == nil {
		// Values this large are epoch milliseconds (ArangoDB DATE_NOW()).
		if epoch > 1e12 {
			t.Time = time.UnixMilli(int64(epoch)).UTC()
		} else {
			t.Time = time.Unix(int64(epoch), 0).UTC()
		}
		return nil
	}

	t.Time = time.Now().UTC()
	return nil
}
