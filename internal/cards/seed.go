package cards

import (
	"time"

	"github.com/papecode/nfc-card-demo/internal/qr"
)

// Seed returns the demo card dataset. QR links are derived from the running
// service's public base URL rather than hardcoded.
func Seed(links *qr.LinkBuilder) []Card {
	cards := []Card{
		{
			ID:          "card-001",
			OwnerID:     "user-001",
			Name:        "Professional Card",
			Description: "My professional card with contact details",
			IsActive:    true,
			CreatedAt:   time.Date(2025, 2, 15, 10, 30, 0, 0, time.UTC),
			LinkedIn:    "https://linkedin.com/in/admintest",
			Twitter:     "https://twitter.com/admintest",
			Facebook:    "https://facebook.com/admintest",
			Instagram:   "https://instagram.com/admintest",
			Job:         "Web Developer",
			Company:     "Tech Solutions",
			Email:       "admin@example.com",
			Phone:       "+33 1 23 45 67 89",
			Website:     "https://example.com",
			Template:    "dark",
		},
		{
			ID:          "card-002",
			OwnerID:     "user-001",
			Name:        "Personal Card",
			Description: "My personal card for friends",
			IsActive:    true,
			CreatedAt:   time.Date(2025, 3, 10, 14, 45, 0, 0, time.UTC),
			Twitter:     "https://twitter.com/personal",
			Facebook:    "https://facebook.com/personal",
			Instagram:   "https://instagram.com/personal",
			Job:         "Freelance",
			Template:    "gradient",
		},
		{
			ID:          "card-003",
			OwnerID:     "user-002",
			Name:        "Networking Card",
			Description: "My card for professional networking",
			IsActive:    false,
			CreatedAt:   time.Date(2025, 4, 22, 9, 15, 0, 0, time.UTC),
			LinkedIn:    "https://www.linkedin.com/in/boully-galissa-17922089",
			Job:         "Chief of Staff",
			Email:       "user@example.com",
			Phone:       "78 527 87 73",
			Website:     "https://marketingpro.com",
			Template:    "minimal",
		},
		{
			ID:          "card-004",
			OwnerID:     "user-002",
			Name:        "Event Card",
			Description: "My card for special events",
			IsActive:    true,
			CreatedAt:   time.Date(2025, 5, 5, 16, 20, 0, 0, time.UTC),
			Template:    "light",
		},
		{
			ID:          "card-005",
			OwnerID:     "user-003",
			Name:        "Company Card",
			Description: "Card for my company with contact details and website",
			IsActive:    true,
			CreatedAt:   time.Date(2025, 1, 30, 11, 10, 0, 0, time.UTC),
			LinkedIn:    "https://linkedin.com/company/paulcompany",
			Job:         "CEO",
			Company:     "Paul Company",
			Email:       "paul@example.com",
			Phone:       "+33 6 12 34 56 78",
			Website:     "https://paulcompany.com",
			Template:    "dark",
		},
	}

	for i := range cards {
		cards[i].QRCode = links.ImageURL(cards[i].ID)
	}
	return cards
}
