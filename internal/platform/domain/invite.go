package domain

import "time"

// UserInvite binds an email address to an organization and role, redeemable
// exactly once. Only the SHA-256 fingerprint of the opaque token is stored.
type UserInvite struct {
	ID             string
	OrganizationID string
	Email          string
	Role           Role
	TokenHash      string
	Used           bool
	UsedBy         string     // User ID; empty until redeemed
	ExpiresAt      *time.Time // nil means valid indefinitely
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Valid reports whether the invite can still be redeemed at t.
func (i UserInvite) Valid(t time.Time) bool {
	if i.Used {
		return false
	}
	return i.ExpiresAt == nil || t.Before(*i.ExpiresAt)
}
