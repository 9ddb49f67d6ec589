package domain

import "time"

// Organization is the tenant root. Every user, invite and observation row is
// owned by exactly one organization; nothing crosses the boundary.
type Organization struct {
	ID        string
	Name      string
	Domain    string // Unique, immutable after signup
	CreatedAt time.Time
}

// Plan is a subscription tier with hard resource ceilings. Reference data,
// seeded by migration and rarely mutated.
type Plan struct {
	ID                string
	Name              string
	PriceMonthlyCents int64
	MaxUsers          int
	MaxObservations   int
	AdvancedDashboard bool
	ExportsEnabled    bool
	CreatedAt         time.Time
}

// FreePlanName identifies the default tier assigned at signup.
const FreePlanName = "Free"

// Subscription links an organization to its plan. One per organization,
// created in the same transaction as the organization itself.
type Subscription struct {
	ID             string
	OrganizationID string
	PlanID         string
	Active         bool
	StartedAt      time.Time
	ExpiresAt      *time.Time // nil means no expiry
}

// Current reports whether the subscription is in force at t: flagged active
// and not yet past its expiry.
func (s Subscription) Current(t time.Time) bool {
	if !s.Active {
		return false
	}
	return s.ExpiresAt == nil || t.Before(*s.ExpiresAt)
}
