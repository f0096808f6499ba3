// Package dashboard implements the aggregate statistics endpoint.
package dashboard

import "github.com/aidconnect/relief-backend/model"

// Stats holds the aggregate counts shown on the dashboard.
type Stats struct {
	ActiveNeedsCount    int `json:"active_needs_count"`
	FulfilledNeedsCount int `json:"fulfilled_needs_count"`
	TotalDonations      int `json:"total_donations"`
	CriticalNeedsCount  int `json:"critical_needs_count"`
}

// ComputeStats derives the dashboard counts. Only active needs count toward
// the critical total.
func ComputeStats(active, fulfilled []model.Need, totalDonations int) Stats {
	critical := 0
	for _, n := range active {
		if n.UrgencyLevel == model.UrgencyCritical {
			critical++
		}
	}

	return Stats{
		ActiveNeedsCount:    len(active),
		FulfilledNeedsCount: len(fulfilled),
		TotalDonations:      totalDonations,
		CriticalNeedsCount:  critical,
	}
}
