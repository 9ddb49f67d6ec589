package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/pkg/cryptox"
	"github.com/sitewatch/sitewatch/pkg/idx"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

// MinPasswordLength is enforced on signup and invite acceptance.
const MinPasswordLength = 8

// SubscriptionTermDays is the initial term stamped on the signup
// subscription. Renewal extends ExpiresAt; a lapsed subscription keeps the
// tenant readable but closes premium gates.
const SubscriptionTermDays = 30

type SignupService struct {
	Store store.Store
}

// SignupInput carries everything needed to stand up a new tenant.
type SignupInput struct {
	OrganizationName   string
	OrganizationDomain string
	Email              string
	Password           string
}

// SignupResult is the freshly created tenant and its owner.
type SignupResult struct {
	Organization domain.Organization
	User         domain.User
}

// CreateOrganizationOwner provisions an organization, its Free subscription
// and the owning user in a single transaction. The duplicate-email check runs
// before any write so a taken email never leaves an orphaned organization
// behind.
func (s *SignupService) CreateOrganizationOwner(ctx context.Context, in SignupInput) (SignupResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	in.OrganizationName = strings.TrimSpace(in.OrganizationName)
	in.OrganizationDomain = strings.ToLower(strings.TrimSpace(in.OrganizationDomain))
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.OrganizationName == "" || in.OrganizationDomain == "" {
		return SignupResult{}, fmt.Errorf("%w: organization name and domain are required", ErrValidation)
	}
	if !strings.Contains(in.Email, "@") {
		return SignupResult{}, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(in.Password) < MinPasswordLength {
		return SignupResult{}, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	// 2. Refuse a taken email or domain before creating anything.
	if _, err := s.Store.Users().GetUserByEmail(ctx, in.Email); err == nil {
		return SignupResult{}, fmt.Errorf("%w: email already registered", ErrDuplicateIdentity)
	} else if !errors.Is(err, store.ErrNotFound) {
		return SignupResult{}, err
	}
	if _, err := s.Store.Organizations().GetOrganizationByDomain(ctx, in.OrganizationDomain); err == nil {
		return SignupResult{}, fmt.Errorf("%w: organization domain already registered", ErrDuplicateIdentity)
	} else if !errors.Is(err, store.ErrNotFound) {
		return SignupResult{}, err
	}

	// 3. Hash the password outside the transaction; argon2 is not cheap.
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return SignupResult{}, err
	}

	now := time.Now().UTC()
	org := domain.Organization{
		ID:        idx.New().String(),
		Name:      in.OrganizationName,
		Domain:    in.OrganizationDomain,
		CreatedAt: now,
	}
	owner := domain.User{
		ID:             idx.New().String(),
		Email:          in.Email,
		PasswordHash:   hash,
		OrganizationID: org.ID,
		Roles: domain.RoleSet{}.
			Add(domain.RoleManager).
			Add(domain.RoleObserver).
			Add(domain.RoleActionOwner),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 4. Organization, subscription and owner are one atomic unit. No
	// organization may ever exist without a subscription.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		plan, err := tx.Plans().GetPlanByName(ctx, domain.FreePlanName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %q plan missing from deployment", ErrConfiguration, domain.FreePlanName)
			}
			return err
		}

		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("%w: organization domain already registered", ErrDuplicateIdentity)
			}
			return err
		}

		expires := now.AddDate(0, 0, SubscriptionTermDays)
		sub := domain.Subscription{
			ID:             idx.New().String(),
			OrganizationID: org.ID,
			PlanID:         plan.ID,
			Active:         true,
			StartedAt:      now,
			ExpiresAt:      &expires,
		}
		if err := tx.Subscriptions().CreateSubscription(ctx, sub); err != nil {
			return err
		}

		if err := tx.Users().CreateUser(ctx, owner); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Lost the race with a concurrent signup using the same email.
				return fmt.Errorf("%w: email already registered", ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return SignupResult{}, err
	}

	log.Info("organization created",
		slog.String("org_id", org.ID),
		slog.String("org_domain", org.Domain),
		slog.String("owner_id", owner.ID),
	)

	return SignupResult{Organization: org, User: owner}, nil
}
