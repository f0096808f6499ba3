// Package needs defines the GraphQL queries for relief needs.
package needs

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/graphql-go/graphql"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/model"
)

// buildListQuery assembles the needs listing query from the resolver args.
// A missing or null status falls back to "active"; an urgency of "all" means
// no urgency restriction.
func buildListQuery(args map[string]interface{}) (string, map[string]interface{}) {
	status := "active"
	if s, ok := args["status"].(string); ok && s != "" {
		status = s
	}

	query := `
		FOR n IN relief_needs
			FILTER n.status == @status
	`
	bindVars := map[string]interface{}{
		"status": status,
	}

	if urgency, ok := args["urgency"].(string); ok && urgency != "" && urgency != "all" {
		query += `	FILTER n.urgency_level == @urgency
`
		bindVars["urgency"] = urgency
	}

	if search, ok := args["search"].(string); ok && search != "" {
		query += `	FILTER CONTAINS(LOWER(n.item_name), LOWER(@search))
`
		bindVars["search"] = search
	}

	query += `	SORT n.created_at DESC
			RETURN n
	`

	return query, bindVars
}

// GetQueryFields returns the need queries to be mounted in the root schema.
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"need": &graphql.Field{
			Type: NeedType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id := p.Args["id"].(string)

				ctx := context.Background()
				query := `
					FOR n IN relief_needs
						FILTER n._key == @need_key
						LIMIT 1
						RETURN n
				`
				cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
					BindVars: map[string]interface{}{
						"need_key": id,
					},
				})
				if err != nil {
					return nil, err
				}
				defer cursor.Close()

				if !cursor.HasMore() {
					return nil, nil
				}
				var need model.Need
				if _, err := cursor.ReadDocument(ctx, &need); err != nil {
					return nil, err
				}
				return need, nil
			},
		},
		"needs": &graphql.Field{
			Type: graphql.NewList(NeedType),
			Args: graphql.FieldConfigArgument{
				"status":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: "active"},
				"urgency": &graphql.ArgumentConfig{Type: graphql.String},
				"search":  &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				query, bindVars := buildListQuery(p.Args)

				ctx := context.Background()
				cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
					BindVars: bindVars,
				})
				if err != nil {
					return nil, err
				}
				defer cursor.Close()

				needs := make([]model.Need, 0)
				for cursor.HasMore() {
					var need model.Need
					if _, err := cursor.ReadDocument(ctx, &need); err != nil {
						return nil, err
					}
					needs = append(needs, need)
				}

				return needs, nil
			},
		},
	}
}
