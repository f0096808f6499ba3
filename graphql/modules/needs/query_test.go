package needs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryDefaults(t *testing.T) {
	query, bindVars := buildListQuery(map[string]interface{}{})

	assert.Equal(t, "active", bindVars["status"])
	assert.NotContains(t, query, "@urgency")
	assert.NotContains(t, query, "@search")
}

// An explicit null status in the request lands as a nil arg; the listing
// still defaults to active instead of panicking.
func TestBuildListQueryNullStatus(t *testing.T) {
	_, bindVars := buildListQuery(map[string]interface{}{"status": nil})

	assert.Equal(t, "active", bindVars["status"])
}

func TestBuildListQueryFilters(t *testing.T) {
	query, bindVars := buildListQuery(map[string]interface{}{
		"status":  "fulfilled",
		"urgency": "critical",
		"search":  "rice",
	})

	assert.Equal(t, "fulfilled", bindVars["status"])
	assert.Equal(t, "critical", bindVars["urgency"])
	assert.Equal(t, "rice", bindVars["search"])
	assert.Contains(t, query, "@urgency")
	assert.Contains(t, query, "@search")
}

func TestBuildListQueryAllUrgency(t *testing.T) {
	query, bindVars := buildListQuery(map[string]interface{}{
		"urgency": "all",
	})

	assert.NotContains(t, query, "@urgency")
	_, bound := bindVars["urgency"]
	assert.False(t, bound)
}
