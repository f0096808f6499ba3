// Package dashboard implements the resolvers for dashboard metrics.
package dashboard

import (
	"context"

	"github.com/aidconnect/relief-backend/database"
)

// statsQuery computes all dashboard counts in one pass. LENGTH(donations)
// resolves to the collection's document count.
const statsQuery = `
	LET active = LENGTH(
		FOR n IN relief_needs
			FILTER n.status == "active"
			RETURN 1
	)
	LET fulfilled = LENGTH(
		FOR n IN relief_needs
			FILTER n.status == "fulfilled"
			RETURN 1
	)
	LET critical = LENGTH(
		FOR n IN relief_needs
			FILTER n.status == "active" AND n.urgency_level == "critical"
			RETURN 1
	)
	RETURN {
		active_needs_count: active,
		fulfilled_needs_count: fulfilled,
		total_donations: LENGTH(donations),
		critical_needs_count: critical
	}
`

// ResolveStats fetches the aggregate dashboard counts.
func ResolveStats(db database.DBConnection) (interface{}, error) {
	ctx := context.Background()

	cursor, err := db.Database.Query(ctx, statsQuery, nil)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var stats map[string]interface{}
	if !cursor.HasMore() {
		return map[string]interface{}{}, nil
	}
	if _, err := cursor.ReadDocument(ctx, &stats); err != nil {
		return nil, err
	}

	return stats, nil
}
