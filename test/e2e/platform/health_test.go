package platform_test

import (
	"testing"

	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/stretchr/testify/require"
)

// TestHealthProbes checks the liveness and readiness endpoints.
func TestHealthProbes(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)

	t.Run("Livez", func(t *testing.T) {
		health, err := client.Livez(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
	})

	t.Run("Readyz", func(t *testing.T) {
		health, err := client.Readyz(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}

// TestDemoRequestForm covers the public lead-capture endpoint.
func TestDemoRequestForm(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)

	t.Run("StoresLead", func(t *testing.T) {
		resp, err := client.SubmitDemoRequest(t.Context(), sitesdk.DemoRequestRequest{
			FullName: "Jordan Smith",
			Email:    "jordan@prospect.example.com",
			Company:  "Prospect Mining",
			Message:  "Interested in a walkthrough for our three sites.",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.ID)
	})

	t.Run("RejectsMissingName", func(t *testing.T) {
		_, err := client.SubmitDemoRequest(t.Context(), sitesdk.DemoRequestRequest{
			Email: "anon@prospect.example.com",
		})
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeInvalidRequest, "demo request without a name")
	})

	t.Run("TenantCannotListLeads", func(t *testing.T) {
		_, owner := provisionTenant(t, client, "curious-co")
		_, err := owner.ListDemoRequests(t.Context())
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "lead list without superuser")
	})
}
