// Package dashboard defines the GraphQL types for the dashboard metrics.
package dashboard

import "github.com/graphql-go/graphql"

// StatsType represents the aggregate dashboard counts.
var StatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardStats",
	Fields: graphql.Fields{
		"active_needs_count":    &graphql.Field{Type: graphql.Int},
		"fulfilled_needs_count": &graphql.Field{Type: graphql.Int},
		"total_donations":       &graphql.Field{Type: graphql.Int},
		"critical_needs_count":  &graphql.Field{Type: graphql.Int},
	},
})
