package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/internal/platform/store/drivers/sqlite"
	"github.com/sitewatch/sitewatch/pkg/cryptox"
	"github.com/sitewatch/sitewatch/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper so tests never touch a real one.
	dir, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	m.Run()
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// newTestOrg signs up a fresh organization and returns its owner (a manager
// with all capabilities) so tests exercise the same path production does.
func newTestOrg(t *testing.T, st store.Store, domainName string) (domain.Organization, domain.User) {
	t.Helper()

	svc := &SignupService{Store: st}
	result, err := svc.CreateOrganizationOwner(context.Background(), SignupInput{
		OrganizationName:   domainName,
		OrganizationDomain: domainName + ".example.com",
		Email:              "owner@" + domainName + ".example.com",
		Password:           "correct horse battery",
	})
	require.NoError(t, err)
	return result.Organization, result.User
}

// newTestMember inserts a user directly, bypassing invite flow, for tests
// that only need a body in the organization.
func newTestMember(t *testing.T, st store.Store, orgID string, roles domain.RoleSet) domain.User {
	t.Helper()

	now := time.Now().UTC()
	user := domain.User{
		ID:             idx.New().String(),
		Email:          idx.New().String() + "@member.example.com",
		PasswordHash:   "unused",
		OrganizationID: orgID,
		Roles:          roles,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func newTestLocation(t *testing.T, st store.Store, name string) domain.Location {
	t.Helper()

	svc := &LocationService{Store: st}
	loc, err := svc.Create(context.Background(), name)
	require.NoError(t, err)
	return loc
}
