// package main implements the seed tool, which loads sample relief needs
// (and optional pledges against them) from a YAML file into the database for
// local development.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/aidconnect/relief-backend/database"
	"github.com/aidconnect/relief-backend/model"
)

// seedPledge is a donor pledge applied against a seeded need.
type seedPledge struct {
	DonorName       string `yaml:"donor_name"`
	DonorPhone      string `yaml:"donor_phone"`
	DonorEmail      string `yaml:"donor_email"`
	PledgedQuantity int    `yaml:"pledged_quantity"`
	DonationMethod  string `yaml:"donation_method"`
	DeliveryNotes   string `yaml:"delivery_notes"`
}

// seedNeed is a relief need in the seed file.
type seedNeed struct {
	VolunteerName     string       `yaml:"volunteer_name"`
	VolunteerPhone    string       `yaml:"volunteer_phone"`
	VolunteerEmail    string       `yaml:"volunteer_email"`
	VolunteerLocation string       `yaml:"volunteer_location"`
	ItemName          string       `yaml:"item_name"`
	RequiredQuantity  int          `yaml:"required_quantity"`
	UrgencyLevel      string       `yaml:"urgency_level"`
	Description       string       `yaml:"description"`
	Pledges           []seedPledge `yaml:"pledges"`
}

// seedFile is the top-level seed file shape.
type seedFile struct {
	Needs []seedNeed `yaml:"needs"`
}

func main() {
	file := flag.String("file", "seed.yaml", "path to the YAML seed file")
	flag.Parse()

	content, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	db := database.InitializeDatabase()
	ctx := context.Background()

	needCount := 0
	donationCount := 0

	for _, sn := range seed.Needs {
		need := model.NewNeed(sn.VolunteerName, sn.ItemName, sn.RequiredQuantity)
		need.VolunteerPhone = sn.VolunteerPhone
		need.VolunteerEmail = sn.VolunteerEmail
		need.VolunteerLocation = sn.VolunteerLocation
		need.UrgencyLevel = sn.UrgencyLevel
		need.Description = sn.Description

		meta, err := db.Collections[database.NeedsCollection].CreateDocument(ctx, need)
		if err != nil {
			log.Fatalf("Failed to seed need %q: %v", sn.ItemName, err)
		}
		need.Key = meta.Key
		needCount++

		for _, sp := range sn.Pledges {
			donation := model.NewDonation(need.Key, sp.DonorName, sp.PledgedQuantity)
			donation.DonorPhone = sp.DonorPhone
			donation.DonorEmail = sp.DonorEmail
			donation.DonationMethod = sp.DonationMethod
			donation.DeliveryNotes = sp.DeliveryNotes
			donation.VolunteerName = need.VolunteerName
			donation.VolunteerPhone = need.VolunteerPhone
			donation.ItemName = need.ItemName

			dmeta, err := db.Collections[database.DonationsCollection].CreateDocument(ctx, donation)
			if err != nil {
				log.Fatalf("Failed to seed donation for %q: %v", sn.ItemName, err)
			}
			donation.Key = dmeta.Key

			if err := need.ApplyPledge(donation.Summary()); err != nil {
				log.Fatalf("Failed to apply seed pledge for %q: %v", sn.ItemName, err)
			}
			donationCount++
		}

		if len(sn.Pledges) > 0 {
			update := map[string]interface{}{
				"donated_quantity":   need.DonatedQuantity,
				"remaining_quantity": need.RemainingQuantity,
				"status":             need.Status,
				"donations":          need.Donations,
				"updated_at":         need.UpdatedAt,
			}
			if _, err := db.Collections[database.NeedsCollection].UpdateDocument(ctx, need.Key, update); err != nil {
				log.Fatalf("Failed to update seeded need %q: %v", sn.ItemName, err)
			}
		}
	}

	log.Printf("Seeded %d needs and %d donations", needCount, donationCount)
}
