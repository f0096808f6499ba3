// Package dashboard defines the GraphQL queries for the dashboard metrics.
package dashboard

import (
	"github.com/graphql-go/graphql"

	"github.com/aidconnect/relief-backend/database"
)

// GetQueryFields returns the dashboard queries to be mounted in the root schema.
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"dashboard": &graphql.Field{
			Type: StatsType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveStats(db)
			},
		},
	}
}
