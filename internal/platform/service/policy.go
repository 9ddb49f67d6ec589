package service

import (
	"fmt"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
)

// Action is something an actor can attempt against an observation.
type Action string

const (
	ActionCreate  Action = "create"
	ActionView    Action = "view"
	ActionRectify Action = "rectify"
	ActionVerify  Action = "verify"
	ActionArchive Action = "archive"
	ActionRestore Action = "restore"
	ActionDelete  Action = "delete"
)

// Can evaluates the capability matrix. Tenant membership is NOT checked here;
// call requireTenant first. obs may be nil for ActionCreate.
func Can(actor domain.User, action Action, obs *domain.Observation) bool {
	if actor.Superuser {
		return true
	}

	switch action {
	case ActionCreate:
		// Logging a hazard is open to every member of the tenant.
		return len(actor.Roles) > 0
	case ActionView:
		// Any member of the tenant can read.
		return len(actor.Roles) > 0
	case ActionRectify:
		// Only the assigned action owner may submit a rectification.
		return obs != nil && actor.Roles.Has(domain.RoleActionOwner) && obs.AssignedTo == actor.ID
	case ActionVerify, ActionArchive, ActionRestore:
		return actor.Roles.Has(domain.RoleManager)
	case ActionDelete:
		// Hard delete is a platform-operator action only.
		return false
	default:
		return false
	}
}

// requireTenant rejects cross-tenant access. Superusers pass; everyone else
// must belong to exactly the entity's organization. The failure is Forbidden,
// never a masked 404: the caller learns the row exists but is out of reach.
func requireTenant(actor domain.User, organizationID string) error {
	if actor.Superuser {
		return nil
	}
	if actor.OrganizationID == "" || actor.OrganizationID != organizationID {
		return fmt.Errorf("%w: entity belongs to another organization", ErrForbidden)
	}
	return nil
}
