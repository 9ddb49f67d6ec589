package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/pkg/cryptox"
	"github.com/sitewatch/sitewatch/pkg/jwtx"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

// AuthService authenticates users and issues EdDSA session tokens.
type AuthService struct {
	Store      store.Store
	Keypair    *jwtx.Keypair
	Issuer     string
	SessionTTL time.Duration
}

// Session is an issued access token plus its metadata.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	User        domain.User
}

// Login performs the password grant. Lookups and verification take the same
// path for unknown emails and wrong passwords so the error does not reveal
// which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("user_id", user.ID))
		return Session{}, ErrInvalidCredentials
	}

	if !user.Active {
		log.Info("login rejected for deactivated user", slog.String("user_id", user.ID))
		return Session{}, ErrInvalidCredentials
	}

	return s.issue(user)
}

// IssueSession mints a session for an already-authenticated user, e.g. right
// after signup or invite acceptance.
func (s *AuthService) IssueSession(ctx context.Context, user domain.User) (Session, error) {
	return s.issue(user)
}

func (s *AuthService) issue(user domain.User) (Session, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(
		user.ID, user.Email, user.OrganizationID,
		user.Roles.Strings(), user.Superuser,
		s.Issuer, ttl, time.Now(),
	)
	token, err := s.Keypair.Sign(claims)
	if err != nil {
		return Session{}, err
	}

	return Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		User:        user,
	}, nil
}
