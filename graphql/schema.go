// Package graphql assembles the read-only GraphQL schema from the per-area
// query modules. Mutations stay on the REST surface.
package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/graphql/modules/dashboard"
	"github.com/aidconnect/relief-backend/graphql/modules/needs"
)

var db database.DBConnection

// InitDB stores the database connection for the resolvers.
func InitDB(conn database.DBConnection) {
	db = conn
}

// CreateSchema builds the root query schema from the module query fields.
func CreateSchema() (gql.Schema, error) {
	rootFields := gql.Fields{}

	for name, field := range needs.GetQueryFields(db) {
		rootFields[name] = field
	}
	for name, field := range dashboard.GetQueryFields(db) {
		rootFields[name] = field
	}

	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name:   "Query",
		Fields: rootFields,
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query: rootQuery,
	})
}
