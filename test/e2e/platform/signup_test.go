package platform_test

import (
	"testing"

	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/stretchr/testify/require"
)

// TestSignupAndLogin covers tenant provisioning and the password grant
// against a running container.
func TestSignupAndLogin(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)

	signup, owner := provisionTenant(t, client, "signup-co")

	t.Run("OwnerSessionWorks", func(t *testing.T) {
		detail, err := owner.Organization(t.Context())
		require.NoError(t, err)
		require.Equal(t, signup.Organization.ID, detail.Organization.ID)
		require.Equal(t, "Free", detail.Plan.Name)
		require.Equal(t, 3, detail.Plan.MaxUsers)
		require.Equal(t, 25, detail.Plan.MaxObservations)
		require.False(t, detail.Plan.ExportsEnabled)
		require.True(t, detail.Plan.SubscriptionActive)
	})

	t.Run("OwnerHasAllRoles", func(t *testing.T) {
		require.ElementsMatch(t,
			[]string{"manager", "observer", "action_owner"},
			signup.User.Roles)
	})

	t.Run("DuplicateDomainRejected", func(t *testing.T) {
		_, _, err := client.Signup(t.Context(), sitesdk.SignupRequest{
			OrganizationName:   "Copycat",
			OrganizationDomain: "signup-co.example.com",
			Email:              "other@copycat.example.com",
			Password:           ownerPassword,
		})
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeDuplicateIdentity, "reusing an organization domain")
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		_, _, err := client.Signup(t.Context(), sitesdk.SignupRequest{
			OrganizationName:   "Other Co",
			OrganizationDomain: "other-co.example.com",
			Email:              "owner@signup-co.example.com",
			Password:           ownerPassword,
		})
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeDuplicateIdentity, "reusing a registered email")
	})

	t.Run("LoginWithCorrectPassword", func(t *testing.T) {
		session, _, err := client.Login(t.Context(), "owner@signup-co.example.com", ownerPassword)
		require.NoError(t, err)
		require.NotEmpty(t, session.AccessToken)
		require.Equal(t, "Bearer", session.TokenType)
	})

	t.Run("LoginWithWrongPassword", func(t *testing.T) {
		_, _, err := client.Login(t.Context(), "owner@signup-co.example.com", "not-the-password")
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeInvalidCredentials, "wrong password")
	})

	t.Run("LoginWithUnknownEmail", func(t *testing.T) {
		_, _, err := client.Login(t.Context(), "nobody@signup-co.example.com", ownerPassword)
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeInvalidCredentials, "unknown email")
	})
}
