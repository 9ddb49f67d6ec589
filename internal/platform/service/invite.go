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

// DefaultInviteTTL bounds how long a minted invite stays redeemable.
const DefaultInviteTTL = 7 * 24 * time.Hour

// InviteNoExpiry mints an invite that stays redeemable until it is used.
const InviteNoExpiry time.Duration = -1

// InviteMailer delivers invite notifications. Delivery is fire-and-forget:
// a failed send never rolls back the invite.
type InviteMailer interface {
	SendInvite(ctx context.Context, toEmail, orgName string, role domain.Role, token string) error
}

type InviteService struct {
	Store store.Store
	Mail  InviteMailer // nil disables mail
}

// MintInvite creates an invite for an email address, bound to the actor's
// organization. Managers only. The raw token is returned exactly once; the
// store keeps only its fingerprint. A zero ttl falls back to DefaultInviteTTL;
// a negative ttl (InviteNoExpiry) mints an invite with no expiry at all.
func (s *InviteService) MintInvite(ctx context.Context, actor domain.User, email string, role domain.Role, ttl time.Duration) (string, domain.UserInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Capability and tenant.
	if !actor.Superuser && !actor.Roles.Has(domain.RoleManager) {
		return "", domain.UserInvite{}, fmt.Errorf("%w: only managers can invite", ErrForbidden)
	}
	if actor.OrganizationID == "" {
		return "", domain.UserInvite{}, fmt.Errorf("%w: actor has no organization", ErrValidation)
	}

	// 2. Validate input.
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return "", domain.UserInvite{}, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return "", domain.UserInvite{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if ttl == 0 {
		ttl = DefaultInviteTTL
	}

	// 3. A registered email cannot be invited again.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return "", domain.UserInvite{}, fmt.Errorf("%w: email already registered", ErrDuplicateIdentity)
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", domain.UserInvite{}, err
	}

	// 4. Seat capacity is checked at mint time so a full team learns about
	// the ceiling before anyone receives a dead invite.
	_, plan, err := entitlementsFor(ctx, s.Store, actor.OrganizationID)
	if err != nil {
		return "", domain.UserInvite{}, err
	}
	if err := checkUserCapacity(ctx, s.Store, actor.OrganizationID, plan); err != nil {
		return "", domain.UserInvite{}, err
	}

	// 5. Generate and fingerprint the token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.UserInvite{}, err
	}

	now := time.Now().UTC()
	var expiresAt *time.Time
	if ttl > 0 {
		e := now.Add(ttl)
		expiresAt = &e
	}
	invite := domain.UserInvite{
		ID:             idx.New().String(),
		OrganizationID: actor.OrganizationID,
		Email:          email,
		Role:           role,
		TokenHash:      cryptox.FingerprintToken(token),
		ExpiresAt:      expiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		return "", domain.UserInvite{}, err
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("org_id", invite.OrganizationID),
		slog.String("role", string(role)),
	)

	// 6. Mail is best-effort. The invite already exists; the manager can
	// re-send the raw token out of band if delivery fails.
	if s.Mail != nil {
		org, err := s.Store.Organizations().GetOrganizationByID(ctx, actor.OrganizationID)
		if err != nil {
			log.Error("failed to load organization for invite mail", slog.Any("error", err))
		} else if err := s.Mail.SendInvite(ctx, email, org.Name, role, token); err != nil {
			log.Error("failed to send invite mail",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
		}
	}

	return token, invite, nil
}

// ListInvites returns the actor's organization's invites. Managers only.
func (s *InviteService) ListInvites(ctx context.Context, actor domain.User) ([]domain.UserInvite, error) {
	if !actor.Superuser && !actor.Roles.Has(domain.RoleManager) {
		return nil, fmt.Errorf("%w: only managers can list invites", ErrForbidden)
	}
	return s.Store.Invites().ListInvitesByOrganization(ctx, actor.OrganizationID)
}

// AcceptInvite redeems an invite token, creating the user account inside a
// single transaction. The used flag guard in the store makes redemption
// atomic: of two concurrent accepts, exactly one wins.
func (s *InviteService) AcceptInvite(ctx context.Context, token, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, fmt.Errorf("%w: missing token", ErrInviteInvalid)
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	fingerprint := cryptox.FingerprintToken(token)
	now := time.Now().UTC()

	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		invite, err := tx.Invites().GetInviteByTokenHash(ctx, fingerprint)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteInvalid
			}
			return err
		}
		if !invite.Valid(now) {
			return fmt.Errorf("%w: invite used or expired", ErrInviteInvalid)
		}

		// Seats may have filled up since the invite was minted.
		_, plan, err := entitlementsFor(ctx, tx, invite.OrganizationID)
		if err != nil {
			return err
		}
		if err := checkUserCapacity(ctx, tx, invite.OrganizationID, plan); err != nil {
			return err
		}

		user = domain.User{
			ID:             idx.New().String(),
			Email:          invite.Email,
			PasswordHash:   hash,
			OrganizationID: invite.OrganizationID,
			Roles:          domain.RoleSet{}.Add(invite.Role),
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("%w: email already registered", ErrConflict)
			}
			return err
		}

		if err := tx.Invites().MarkInviteUsed(ctx, invite.ID, user.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Another accept consumed the invite between our read and
				// this write.
				return fmt.Errorf("%w: invite already used", ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("invite accepted",
		slog.String("user_id", user.ID),
		slog.String("org_id", user.OrganizationID),
	)

	return user, nil
}
