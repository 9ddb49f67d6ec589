package domain

import "time"

type User struct {
	ID             string
	Email          string // Unique identity key
	PasswordHash   string // argon2 encoded
	OrganizationID string // Empty only transiently before tenant assignment
	Roles          RoleSet
	Superuser      bool
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsManager reports whether the user can verify observations, manage
// archival, and invite members.
func (u User) IsManager() bool {
	return u.Roles.Has(RoleManager)
}
