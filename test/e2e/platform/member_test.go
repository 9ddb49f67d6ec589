package platform_test

import (
	"testing"

	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/stretchr/testify/require"
)

func TestMemberAdministration(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)
	_, owner := provisionTenant(t, client, "memberadmin")
	accepted, member := inviteMember(t, client, owner, "crew@memberadmin.example.com", "observer")

	t.Run("OwnerListsMembers", func(t *testing.T) {
		members, err := owner.ListMembers(t.Context())
		require.NoError(t, err)
		require.Len(t, members.Members, 2)
	})

	t.Run("NonManagerCannotListMembers", func(t *testing.T) {
		_, err := member.ListMembers(t.Context())
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "observer listing members")
	})

	t.Run("PromotionTakesEffectOnNextLogin", func(t *testing.T) {
		updated, err := owner.SetMemberRoles(t.Context(), accepted.User.ID, []string{"observer", "manager"})
		require.NoError(t, err)
		require.Contains(t, updated.Roles, "manager")

		// The old token still carries observer-only claims; a fresh login
		// picks up the new role set.
		_, promoted, err := client.Login(t.Context(), accepted.User.Email, memberPassword)
		require.NoError(t, err)
		members, err := promoted.ListMembers(t.Context())
		require.NoError(t, err)
		require.Len(t, members.Members, 2)
	})

	t.Run("OwnerCannotDeactivateSelf", func(t *testing.T) {
		ownerID := ""
		members, err := owner.ListMembers(t.Context())
		require.NoError(t, err)
		for _, m := range members.Members {
			if m.Email == "owner@memberadmin.example.com" {
				ownerID = m.ID
			}
		}
		require.NotEmpty(t, ownerID)
		err = owner.DeactivateMember(t.Context(), ownerID)
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeInvalidRequest, "deactivating own account")
	})

	t.Run("DeactivationEndsAccess", func(t *testing.T) {
		require.NoError(t, owner.DeactivateMember(t.Context(), accepted.User.ID))

		_, err := member.ListObservations(t.Context(), sitesdk.ObservationListQuery{})
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeUnauthorized, "deactivated member using old session")

		_, _, err = client.Login(t.Context(), accepted.User.Email, memberPassword)
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeInvalidCredentials, "deactivated member logging in")
	})
}
