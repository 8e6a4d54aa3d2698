package directory

import (
	"time"

	"github.com/papecode/nfc-card-demo/internal/identity"
)

// Seed returns the demo identity set. IDs are stable so the card dataset can
// reference them.
func Seed() []identity.User {
	return []identity.User{
		{
			ID:        "user-001",
			Email:     "admin@example.com",
			Name:      "Admin Test",
			Role:      identity.RoleAdmin,
			CreatedAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:        "user-002",
			Email:     "user@example.com",
			Name:      "Boully Galissa",
			Role:      identity.RoleUser,
			CreatedAt: time.Date(2025, 1, 15, 13, 45, 0, 0, time.UTC),
		},
		{
			ID:        "user-003",
			Email:     "paul@example.com",
			Name:      "Paul Martin",
			Role:      identity.RoleUser,
			CreatedAt: time.Date(2025, 2, 5, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        "user-004",
			Email:     "marie@example.com",
			Name:      "Marie Dubois",
			Role:      identity.RoleUser,
			CreatedAt: time.Date(2025, 2, 20, 15, 20, 0, 0, time.UTC),
		},
		{
			ID:           "user-005",
			Email:        "sophie@example.com",
			Name:         "Sophie Bernard",
			Role:         identity.RoleUser,
			CreatedAt:    time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC),
			ProfileImage: "/profiles/sophie_bernard.png",
		},
	}
}
