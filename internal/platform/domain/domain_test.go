package domain_test

import (
	"testing"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/stretchr/testify/require"
)

func TestParseStatusCanonicalSpelling(t *testing.T) {
	t.Parallel()

	// Underscore form is the canonical spelling on every path; the legacy
	// space-separated variant must not round-trip.
	st, err := domain.ParseStatus("in_progress")
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, st)

	_, err = domain.ParseStatus("IN PROGRESS")
	require.Error(t, err)

	for _, valid := range []string{"OPEN", "AWAITING_VERIFICATION", "IN_PROGRESS", "CLOSED"} {
		_, err := domain.ParseStatus(valid)
		require.NoError(t, err, valid)
	}
}

func TestParseRoleSet(t *testing.T) {
	t.Parallel()

	set, err := domain.ParseRoleSet("observer manager observer")
	require.NoError(t, err)
	require.Equal(t, domain.RoleSet{domain.RoleObserver, domain.RoleManager}, set)
	require.True(t, set.Has(domain.RoleManager))
	require.False(t, set.Has(domain.RoleActionOwner))

	_, err = domain.ParseRoleSet("observer admin")
	require.Error(t, err)
}

func TestRoleSetEncoding(t *testing.T) {
	t.Parallel()

	set := domain.RoleSet{}.Add(domain.RoleObserver).Add(domain.RoleActionOwner)
	require.Equal(t, "observer action_owner", set.String())

	// Add is idempotent.
	require.Len(t, set.Add(domain.RoleObserver), 2)
}

func TestInviteValidity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)

	require.True(t, domain.UserInvite{}.Valid(now), "no expiry means valid indefinitely")
	require.True(t, domain.UserInvite{ExpiresAt: &later}.Valid(now))
	require.False(t, domain.UserInvite{ExpiresAt: &earlier}.Valid(now))
	require.False(t, domain.UserInvite{Used: true}.Valid(now))
}

func TestObservationOverdue(t *testing.T) {
	t.Parallel()

	now := time.Now()
	past := now.Add(-24 * time.Hour)

	require.True(t, domain.Observation{Status: domain.StatusOpen, TargetDate: &past}.Overdue(now))
	require.False(t, domain.Observation{Status: domain.StatusClosed, TargetDate: &past}.Overdue(now))
	require.False(t, domain.Observation{Status: domain.StatusOpen}.Overdue(now))
}
