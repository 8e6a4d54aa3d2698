package identity

import "time"

// Role is the closed set of viewer roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// HomePath maps a role to its default landing route.
func (r Role) HomePath() string {
	if r == RoleAdmin {
		return "/admin"
	}
	return "/dashboard"
}

// User is an identity record in the user directory.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	ProfileImage string    `json:"profile_image,omitempty"`
}
