package platform_test

import (
	"fmt"
	"testing"

	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/stretchr/testify/require"
)

// TestInviteLifecycle covers mint, list, redeem, and the single-use guard.
func TestInviteLifecycle(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)
	_, owner := provisionTenant(t, client, "invite-co")

	invite, err := owner.MintInvite(t.Context(), sitesdk.InviteRequest{
		Email: "newhire@invite-co.example.com",
		Role:  "observer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, invite.InviteToken)
	require.Equal(t, "observer", invite.Role)

	t.Run("ListShowsPendingInvite", func(t *testing.T) {
		list, err := owner.ListInvites(t.Context())
		require.NoError(t, err)
		require.Len(t, list.Invites, 1)
		require.Equal(t, "newhire@invite-co.example.com", list.Invites[0].Email)
		require.False(t, list.Invites[0].Used)
	})

	t.Run("RedeemCreatesWorkingAccount", func(t *testing.T) {
		accepted, member, err := client.AcceptInvite(t.Context(), invite.InviteToken, memberPassword)
		require.NoError(t, err)
		require.Equal(t, []string{"observer"}, accepted.User.Roles)

		// New observer can log an observation straight away.
		obs, err := member.CreateObservation(t.Context(), sitesdk.ObservationRequest{
			Title:    "Damaged ladder rung in warehouse",
			Severity: "MEDIUM",
		})
		require.NoError(t, err)
		require.Equal(t, "OPEN", obs.Status)
	})

	t.Run("SecondRedeemRejected", func(t *testing.T) {
		_, _, err := client.AcceptInvite(t.Context(), invite.InviteToken, memberPassword)
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeInviteInvalid, "reusing an invite token")
	})

	t.Run("GarbageTokenRejected", func(t *testing.T) {
		_, _, err := client.AcceptInvite(t.Context(), "not-a-real-token", memberPassword)
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeInviteInvalid, "unknown invite token")
	})

	t.Run("NonManagerCannotMint", func(t *testing.T) {
		_, observer, err := client.Login(t.Context(), "newhire@invite-co.example.com", memberPassword)
		require.NoError(t, err)

		_, err = observer.MintInvite(t.Context(), sitesdk.InviteRequest{
			Email: "friend@invite-co.example.com",
			Role:  "observer",
		})
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "observer minting an invite")
	})
}

// TestSeatCapacity drives a Free-plan organization to its 3-seat ceiling.
func TestSeatCapacity(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)
	_, owner := provisionTenant(t, client, "fullhouse-co")

	// Owner holds seat 1. Seats 2 and 3 fill normally.
	for i := 2; i <= 3; i++ {
		email := fmt.Sprintf("member%d@fullhouse-co.example.com", i)
		inviteMember(t, client, owner, email, "observer")
	}

	t.Run("FourthSeatRefused", func(t *testing.T) {
		_, err := owner.MintInvite(t.Context(), sitesdk.InviteRequest{
			Email: "member4@fullhouse-co.example.com",
			Role:  "observer",
		})
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeCapacityExceeded, "fourth seat on a 3-seat plan")
	})
}
