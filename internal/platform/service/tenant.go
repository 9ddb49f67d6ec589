package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/internal/platform/telemetry"
)

// TenantService resolves an organization and the entitlements of its
// subscription. Every tenant-scoped operation goes through here rather than
// trusting anything ambient.
type TenantService struct {
	Store store.Store
}

// Organization fetches a tenant by id.
func (s *TenantService) Organization(ctx context.Context, orgID string) (domain.Organization, error) {
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrNotFound
		}
		return domain.Organization{}, err
	}
	return org, nil
}

// Entitlements returns the subscription and plan governing an organization.
func (s *TenantService) Entitlements(ctx context.Context, orgID string) (domain.Subscription, domain.Plan, error) {
	return entitlementsFor(ctx, s.Store, orgID)
}

// Members lists the actor's organization's users, oldest first. Managers only.
func (s *TenantService) Members(ctx context.Context, actor domain.User) ([]domain.User, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}
	return s.Store.Users().ListUsersByOrganization(ctx, actor.OrganizationID)
}

// SetMemberRoles replaces a member's role set. Managers only, same tenant
// only. A manager cannot strip their own manager role; someone must stay able
// to administer the organization.
func (s *TenantService) SetMemberRoles(ctx context.Context, actor domain.User, userID string, roles domain.RoleSet) error {
	if err := requireManager(actor); err != nil {
		return err
	}
	if len(roles) == 0 {
		return fmt.Errorf("%w: at least one role is required", ErrValidation)
	}
	if actor.ID == userID && !roles.Has(domain.RoleManager) {
		return fmt.Errorf("%w: cannot remove own manager role", ErrValidation)
	}

	member, err := s.memberOf(ctx, actor, userID)
	if err != nil {
		return err
	}
	return s.Store.Users().UpdateUserRoles(ctx, member.ID, roles)
}

// DeactivateMember flips a member inactive, ending their access on the next
// request. Managers only, same tenant only, never yourself. The seat stays
// counted against the plan.
func (s *TenantService) DeactivateMember(ctx context.Context, actor domain.User, userID string) error {
	if err := requireManager(actor); err != nil {
		return err
	}
	if actor.ID == userID {
		return fmt.Errorf("%w: cannot deactivate own account", ErrValidation)
	}

	member, err := s.memberOf(ctx, actor, userID)
	if err != nil {
		return err
	}
	return s.Store.Users().SetUserActive(ctx, member.ID, false)
}

func (s *TenantService) memberOf(ctx context.Context, actor domain.User, userID string) (domain.User, error) {
	member, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	if err := requireTenant(actor, member.OrganizationID); err != nil {
		return domain.User{}, err
	}
	return member, nil
}

func requireManager(actor domain.User) error {
	if actor.Superuser {
		return nil
	}
	if !actor.Roles.Has(domain.RoleManager) {
		return fmt.Errorf("%w: manager capability required", ErrForbidden)
	}
	if actor.OrganizationID == "" {
		return fmt.Errorf("%w: actor has no organization", ErrValidation)
	}
	return nil
}

// entitlementsFor is the shared lookup used by capacity and export checks.
// A missing subscription is a deployment defect: organizations are always
// created together with one.
func entitlementsFor(ctx context.Context, st store.Store, orgID string) (domain.Subscription, domain.Plan, error) {
	sub, err := st.Subscriptions().GetSubscriptionByOrganization(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Subscription{}, domain.Plan{}, fmt.Errorf("%w: organization %s has no subscription", ErrConfiguration, orgID)
		}
		return domain.Subscription{}, domain.Plan{}, err
	}

	plan, err := st.Plans().GetPlanByID(ctx, sub.PlanID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Subscription{}, domain.Plan{}, fmt.Errorf("%w: subscription %s references missing plan", ErrConfiguration, sub.ID)
		}
		return domain.Subscription{}, domain.Plan{}, err
	}

	return sub, plan, nil
}

// checkUserCapacity returns ErrCapacityExceeded when the organization cannot
// take another seat. Best-effort read-then-act; the ceiling is advisory, not
// a hard constraint, so a narrow race is tolerated.
func checkUserCapacity(ctx context.Context, st store.Store, orgID string, plan domain.Plan) error {
	n, err := st.Users().CountUsersByOrganization(ctx, orgID)
	if err != nil {
		return err
	}
	if n >= plan.MaxUsers {
		telemetry.CapacityRejectionsTotal.WithLabelValues("users").Inc()
		return fmt.Errorf("%w: plan %q allows %d users", ErrCapacityExceeded, plan.Name, plan.MaxUsers)
	}
	return nil
}

// checkObservationCapacity mirrors checkUserCapacity for logged observations.
// Archived observations still count; archival hides, it does not reclaim.
func checkObservationCapacity(ctx context.Context, st store.Store, orgID string, plan domain.Plan) error {
	n, err := st.Observations().CountObservationsByOrganization(ctx, orgID)
	if err != nil {
		return err
	}
	if n >= plan.MaxObservations {
		telemetry.CapacityRejectionsTotal.WithLabelValues("observations").Inc()
		return fmt.Errorf("%w: plan %q allows %d observations", ErrCapacityExceeded, plan.Name, plan.MaxObservations)
	}
	return nil
}
