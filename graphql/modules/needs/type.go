// Package needs defines the GraphQL types for relief needs.
package needs

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/aidconnect/relief-backend/model"
)

// DonationSummaryType represents a pledge snapshot embedded in a need.
var DonationSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DonationSummary",
	Fields: graphql.Fields{
		"donation_id":      &graphql.Field{Type: graphql.String},
		"donor_name":       &graphql.Field{Type: graphql.String},
		"donor_phone":      &graphql.Field{Type: graphql.String},
		"donor_email":      &graphql.Field{Type: graphql.String},
		"pledged_quantity": &graphql.Field{Type: graphql.Int},
		"donation_method":  &graphql.Field{Type: graphql.String},
		"delivery_notes":   &graphql.Field{Type: graphql.String},
		"pledge_date": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if s, ok := p.Source.(model.DonationSummary); ok {
					return s.PledgeDate.UTC().Format(time.RFC3339), nil
				}
				return nil, nil
			},
		},
	},
})

// NeedType represents a relief need with its derived display fields.
var NeedType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Need",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if n, ok := p.Source.(model.Need); ok {
					return n.Key, nil
				}
				return nil, nil
			},
		},
		"volunteer_name":     &graphql.Field{Type: graphql.String},
		"volunteer_phone":    &graphql.Field{Type: graphql.String},
		"volunteer_email":    &graphql.Field{Type: graphql.String},
		"volunteer_location": &graphql.Field{Type: graphql.String},
		"item_name":          &graphql.Field{Type: graphql.String},
		"required_quantity":  &graphql.Field{Type: graphql.Int},
		"donated_quantity":   &graphql.Field{Type: graphql.Int},
		"remaining_quantity": &graphql.Field{Type: graphql.Int},
		"urgency_level":      &graphql.Field{Type: graphql.String},
		"description":        &graphql.Field{Type: graphql.String},
		"status":             &graphql.Field{Type: graphql.String},
		"donations":          &graphql.Field{Type: graphql.NewList(DonationSummaryType)},
		"created_at": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if n, ok := p.Source.(model.Need); ok {
					return n.CreatedAt.UTC().Format(time.RFC3339), nil
				}
				return nil, nil
			},
		},
		"updated_at": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if n, ok := p.Source.(model.Need); ok {
					return n.UpdatedAt.UTC().Format(time.RFC3339), nil
				}
				return nil, nil
			},
		},
		"progress_percentage": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if n, ok := p.Source.(model.Need); ok {
					return n.ProgressPercentage(), nil
				}
				return nil, nil
			},
		},
		"time_since": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if n, ok := p.Source.(model.Need); ok {
					return n.TimeSince(time.Now().UTC()), nil
				}
				return nil, nil
			},
		},
	},
})
