package store

import (
	"context"
	"errors"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and gives us a single place to stop accidental transactions within
// transactions.
type Store interface {
	Organizations() Organizations
	Plans() Plans
	Subscriptions() Subscriptions
	Users() Users
	Invites() Invites
	Observations() Observations
	Locations() Locations
	DemoRequests() DemoRequests

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	// CreateOrganization inserts a new organization (id provided via ULID).
	CreateOrganization(ctx context.Context, o domain.Organization) error

	// GetOrganizationByID returns an organization by id.
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// GetOrganizationByDomain returns an organization by its registered domain.
	GetOrganizationByDomain(ctx context.Context, dom string) (domain.Organization, error)

	// ListOrganizations returns all organizations ordered by creation date (newest first).
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}

type Plans interface {
	// GetPlanByID returns a plan by id.
	GetPlanByID(ctx context.Context, id string) (domain.Plan, error)

	// GetPlanByName returns a plan by its unique name (e.g. "Free").
	GetPlanByName(ctx context.Context, name string) (domain.Plan, error)

	// ListPlans returns all plans ordered by monthly price ascending.
	ListPlans(ctx context.Context) ([]domain.Plan, error)

	// CreatePlan inserts a new plan. Used by migrations/seeding and tests.
	CreatePlan(ctx context.Context, p domain.Plan) error
}

type Subscriptions interface {
	// CreateSubscription inserts a subscription for an organization.
	CreateSubscription(ctx context.Context, s domain.Subscription) error

	// GetSubscriptionByOrganization returns the subscription for an organization.
	GetSubscriptionByOrganization(ctx context.Context, orgID string) (domain.Subscription, error)

	// UpdateSubscriptionPlan moves an organization to a different plan.
	UpdateSubscriptionPlan(ctx context.Context, orgID, planID string) error

	// UpdateSubscriptionState sets the active flag and expiry. A nil expiresAt
	// clears the expiry entirely.
	UpdateSubscriptionState(ctx context.Context, orgID string, active bool, expiresAt *time.Time) error
}

type Users interface {
	// CreateUser inserts a new user (id provided via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by email. Emails are unique platform-wide.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsersByOrganization returns all users in an organization ordered by
	// creation date (oldest first).
	ListUsersByOrganization(ctx context.Context, orgID string) ([]domain.User, error)

	// CountUsersByOrganization returns how many users an organization has,
	// including inactive ones. Capacity checks count seats, not activity.
	CountUsersByOrganization(ctx context.Context, orgID string) (int, error)

	// UpdateUserRoles replaces a user's role set and bumps updated_at.
	UpdateUserRoles(ctx context.Context, userID string, roles domain.RoleSet) error

	// SetUserActive flips the active flag and bumps updated_at.
	SetUserActive(ctx context.Context, userID string, active bool) error
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is a SHA-256 fingerprint of
	// the opaque invite token).
	CreateInvite(ctx context.Context, inv domain.UserInvite) error

	// GetInviteByTokenHash returns an invite by fingerprint regardless of
	// validity; the service decides whether it is still redeemable.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.UserInvite, error)

	// ListInvitesByOrganization returns an organization's invites ordered by
	// creation date (newest first).
	ListInvitesByOrganization(ctx context.Context, orgID string) ([]domain.UserInvite, error)

	// MarkInviteUsed sets used=1, used_by=userID, updated_at=now. Returns
	// ErrNotFound if the invite was already consumed, making redemption atomic.
	MarkInviteUsed(ctx context.Context, inviteID string, usedByUserID string) error

	// DeleteExpiredInvites removes unused invites past their expiry (housekeeping).
	DeleteExpiredInvites(ctx context.Context) error
}

// ObservationFilter narrows tenant-scoped observation queries. Zero values
// mean "no constraint" for that field.
type ObservationFilter struct {
	Status          domain.Status
	Severity        domain.Severity
	LocationID      string
	AssignedTo      string
	ObserverID      string
	Search          string // matches title, description, location name or observer email, case-insensitive
	Archived        bool   // false lists live observations, true lists archived
	IncludeArchived bool   // true lists both; overrides Archived (exports want everything)
	From            *time.Time
	To              *time.Time
}

// ObservationPage is a slice of a filtered listing plus the total match count
// so handlers can render pagination without a second query round-trip.
type ObservationPage struct {
	Items []domain.Observation
	Total int
}

type Observations interface {
	// CreateObservation inserts a new observation (id provided via ULID).
	CreateObservation(ctx context.Context, o domain.Observation) error

	// GetObservationByID returns an observation by id. Tenant scoping is the
	// service's job; the store returns whatever matches the id.
	GetObservationByID(ctx context.Context, id string) (domain.Observation, error)

	// ListObservations returns a page of an organization's observations matching
	// the filter, ordered by date_observed descending then id descending.
	ListObservations(ctx context.Context, orgID string, f ObservationFilter, limit, offset int) (ObservationPage, error)

	// UpdateObservation writes back mutable fields (status, assignment,
	// rectification notes, photo, target date, date_closed, archived) and
	// bumps updated_at.
	UpdateObservation(ctx context.Context, o domain.Observation) error

	// DeleteObservation permanently removes an observation.
	DeleteObservation(ctx context.Context, id string) error

	// CountObservationsByOrganization returns the total number of observations
	// an organization has ever logged, archived ones included. Plan capacity
	// counts them all.
	CountObservationsByOrganization(ctx context.Context, orgID string) (int, error)

	// CountObservationsByStatus returns per-status counts for live (unarchived)
	// observations in an organization.
	CountObservationsByStatus(ctx context.Context, orgID string) (map[domain.Status]int, error)

	// CountObservationsBySeverity returns per-severity counts for live
	// observations in an organization.
	CountObservationsBySeverity(ctx context.Context, orgID string) (map[domain.Severity]int, error)

	// CountObservationsByLocation returns live observation counts keyed by
	// location id.
	CountObservationsByLocation(ctx context.Context, orgID string) (map[string]int, error)

	// CountObservationsByMonth returns live observation counts keyed by
	// "YYYY-MM" of date_observed.
	CountObservationsByMonth(ctx context.Context, orgID string) (map[string]int, error)

	// CountOverdueObservations counts live, non-closed observations whose
	// target date has passed.
	CountOverdueObservations(ctx context.Context, orgID string, now time.Time) (int, error)
}

type Locations interface {
	// CreateLocation inserts a new location (id provided via ULID).
	CreateLocation(ctx context.Context, l domain.Location) error

	// GetLocationByID returns a location by id.
	GetLocationByID(ctx context.Context, id string) (domain.Location, error)

	// ListLocations returns all locations ordered by name ascending.
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type DemoRequests interface {
	// CreateDemoRequest stores a demo request from the public form.
	CreateDemoRequest(ctx context.Context, d domain.DemoRequest) error

	// ListDemoRequests returns all demo requests ordered by creation date
	// (newest first). Superuser surface only.
	ListDemoRequests(ctx context.Context) ([]domain.DemoRequest, error)
}
