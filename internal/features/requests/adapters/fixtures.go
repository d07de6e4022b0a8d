package adapters

import (
	"time"

	"courier-connect/internal/features/requests/domain"
)

// SeedRequests returns the sample listings loaded into a fresh repository so
// the marketplace is browsable before anyone has posted.
func SeedRequests() []domain.DeliveryRequest {
	return []domain.DeliveryRequest{
		{
			ID:          "1",
			Title:       "Laptop delivery to downtown office",
			Description: "MacBook Pro in original packaging. Needs to be delivered to 5th floor reception.",
			ItemType:    "electronics",
			Size:        domain.SizeMedium,
			Weight:      3.5,
			PickupLocation: domain.Location{
				Address: "123 Residential St, San Francisco, CA 94102",
				Lat:     37.7749,
				Lng:     -122.4194,
				City:    "San Francisco",
				State:   "CA",
				ZipCode: "94102",
			},
			DropoffLocation: domain.Location{
				Address: "456 Business Ave, San Francisco, CA 94105",
				Lat:     37.7849,
				Lng:     -122.4094,
				City:    "San Francisco",
				State:   "CA",
				ZipCode: "94105",
			},
			RequesterID:     "1",
			RequesterName:   "Yousef Johnson",
			RequesterRating: 4.8,
			Status:          domain.StatusPosted,
			Budget:          25,
			PreferredDate:   "2025-01-25",
			Urgency:         domain.UrgencyMedium,
			CreatedAt:       time.Date(2025, 1, 22, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Art supplies for student",
			Description: "Canvas, paints, and brushes from art store to university dorm.",
			ItemType:    "other",
			Size:        domain.SizeLarge,
			Weight:      8,
			PickupLocation: domain.Location{
				Address: "789 Art Store Blvd, Berkeley, CA 94704",
				Lat:     37.8715,
				Lng:     -122.2730,
				City:    "Berkeley",
				State:   "CA",
				ZipCode: "94704",
			},
			DropoffLocation: domain.Location{
				Address: "UC Berkeley Dorms, Berkeley, CA 94720",
				Lat:     37.8715,
				Lng:     -122.2730,
				City:    "Berkeley",
				State:   "CA",
				ZipCode: "94720",
			},
			RequesterID:     "2",
			RequesterName:   "Hamad Chen",
			RequesterRating: 4.9,
			Status:          domain.StatusPosted,
			Budget:          35,
			PreferredDate:   "2025-01-24",
			Urgency:         domain.UrgencyHigh,
			CreatedAt:       time.Date(2025, 1, 22, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Important documents to law firm",
			Description: "Sealed envelope with legal documents. Must be delivered during business hours.",
			ItemType:    "documents",
			Size:        domain.SizeSmall,
			Weight:      0.5,
			PickupLocation: domain.Location{
				Address: "321 Home Ave, Palo Alto, CA 94301",
				Lat:     37.4419,
				Lng:     -122.1430,
				City:    "Palo Alto",
				State:   "CA",
				ZipCode: "94301",
			},
			DropoffLocation: domain.Location{
				Address: "654 Legal Plaza, San Jose, CA 95113",
				Lat:     37.3382,
				Lng:     -121.8863,
				City:    "San Jose",
				State:   "CA",
				ZipCode: "95113",
			},
			RequesterID:     "3",
			RequesterName:   "Mohamed Rodriguez",
			RequesterRating: 5.0,
			Status:          domain.StatusPosted,
			Budget:          40,
			PreferredDate:   "2025-01-23",
			Urgency:         domain.UrgencyHigh,
			CreatedAt:       time.Date(2025, 1, 22, 9, 45, 0, 0, time.UTC),
		},
	}
}
