package platform_test

import (
	"strings"
	"testing"

	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/stretchr/testify/require"
)

// TestObservationWorkflow walks one observation through the full
// rectify-and-verify lifecycle across two accounts.
func TestObservationWorkflow(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)
	_, owner := provisionTenant(t, client, "workflow-co")

	workerEmail := "worker@workflow-co.example.com"
	workerResp, worker := inviteMember(t, client, owner, workerEmail, "action_owner")

	location, err := owner.CreateLocation(t.Context(), "Loading Dock")
	require.NoError(t, err)

	obs, err := owner.CreateObservation(t.Context(), sitesdk.ObservationRequest{
		Title:       "Hydraulic fluid leak near bay 3",
		Description: "Slick patch spreading under the forklift charging point.",
		LocationID:  location.ID,
		Severity:    "HIGH",
		AssignedTo:  workerResp.User.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "OPEN", obs.Status)

	t.Run("WorkerRectifies", func(t *testing.T) {
		updated, err := worker.RectifyObservation(t.Context(), obs.ID, sitesdk.RectifyRequest{
			Notes: "Degreased the area and replaced the split hose.",
		})
		require.NoError(t, err)
		require.Equal(t, "AWAITING_VERIFICATION", updated.Status)
	})

	t.Run("OwnerCannotRectify", func(t *testing.T) {
		// Verification is pending, but even on an open observation only the
		// assigned action owner may rectify.
		_, err := owner.RectifyObservation(t.Context(), obs.ID, sitesdk.RectifyRequest{
			Notes: "not my job",
		})
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "rectify by non-assignee")
	})

	t.Run("RejectReopensForRework", func(t *testing.T) {
		updated, err := owner.VerifyObservation(t.Context(), obs.ID, "reject")
		require.NoError(t, err)
		require.Equal(t, "IN_PROGRESS", updated.Status)

		// Worker fixes it properly this time.
		updated, err = worker.RectifyObservation(t.Context(), obs.ID, sitesdk.RectifyRequest{
			Notes: "Fitted a drip tray and re-torqued the fittings.",
		})
		require.NoError(t, err)
		require.Equal(t, "AWAITING_VERIFICATION", updated.Status)
	})

	t.Run("ApproveCloses", func(t *testing.T) {
		updated, err := owner.VerifyObservation(t.Context(), obs.ID, "approve")
		require.NoError(t, err)
		require.Equal(t, "CLOSED", updated.Status)
		require.NotNil(t, updated.DateClosed)
	})

	t.Run("WorkerCannotVerify", func(t *testing.T) {
		other, err := owner.CreateObservation(t.Context(), sitesdk.ObservationRequest{
			Title:      "Blocked fire exit",
			Severity:   "HIGH",
			AssignedTo: workerResp.User.ID,
		})
		require.NoError(t, err)

		_, err = worker.RectifyObservation(t.Context(), other.ID, sitesdk.RectifyRequest{Notes: "Cleared pallets."})
		require.NoError(t, err)

		_, err = worker.VerifyObservation(t.Context(), other.ID, "approve")
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "verify without manager role")
	})

	t.Run("ArchiveHidesAndRestoreReturns", func(t *testing.T) {
		archived, err := owner.ArchiveObservation(t.Context(), obs.ID)
		require.NoError(t, err)
		require.True(t, archived.IsArchived)
		require.Equal(t, "CLOSED", archived.Status, "archival must not disturb status")

		page, err := owner.ListObservations(t.Context(), sitesdk.ObservationListQuery{})
		require.NoError(t, err)
		for _, item := range page.Items {
			require.NotEqual(t, obs.ID, item.ID, "archived observation leaked into default list")
		}

		page, err = owner.ListObservations(t.Context(), sitesdk.ObservationListQuery{Archived: true})
		require.NoError(t, err)
		found := false
		for _, item := range page.Items {
			if item.ID == obs.ID {
				found = true
			}
		}
		require.True(t, found, "archived observation missing from archived list")

		restored, err := owner.RestoreObservation(t.Context(), obs.ID)
		require.NoError(t, err)
		require.False(t, restored.IsArchived)
	})

	t.Run("SearchFindsByLocationName", func(t *testing.T) {
		page, err := owner.ListObservations(t.Context(), sitesdk.ObservationListQuery{Search: "Loading Dock"})
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		for _, item := range page.Items {
			require.Equal(t, location.ID, item.LocationID)
		}
	})

	t.Run("ExportForbiddenOnFreePlan", func(t *testing.T) {
		_, err := owner.ExportObservationsCSV(t.Context())
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "export on Free plan")
	})
}

// TestTenantIsolation verifies one organization can never see or touch
// another's observations.
func TestTenantIsolation(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)
	_, alpha := provisionTenant(t, client, "alpha-co")
	_, bravo := provisionTenant(t, client, "bravo-co")

	obs, err := alpha.CreateObservation(t.Context(), sitesdk.ObservationRequest{
		Title:    "Frayed lifting sling in stores",
		Severity: "MEDIUM",
	})
	require.NoError(t, err)

	t.Run("CrossTenantGetForbidden", func(t *testing.T) {
		_, err := bravo.GetObservation(t.Context(), obs.ID)
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "cross-tenant read")
	})

	t.Run("CrossTenantArchiveForbidden", func(t *testing.T) {
		_, err := bravo.ArchiveObservation(t.Context(), obs.ID)
		assertAPIErrorCode(t, err, sitesdk.ErrorCodeForbidden, "cross-tenant archive")
	})

	t.Run("ListsStayDisjoint", func(t *testing.T) {
		page, err := bravo.ListObservations(t.Context(), sitesdk.ObservationListQuery{})
		require.NoError(t, err)
		require.Zero(t, page.Total)
	})

	t.Run("DashboardsStayDisjoint", func(t *testing.T) {
		dash, err := bravo.Dashboard(t.Context())
		require.NoError(t, err)
		require.Zero(t, dash.Total)

		dash, err = alpha.Dashboard(t.Context())
		require.NoError(t, err)
		require.Equal(t, 1, dash.Total)
		require.Equal(t, 1, dash.Open)
	})
}

// TestObservationPaging checks the fixed page size against a larger data set.
func TestObservationPaging(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := sitesdk.NewSDKClient(baseURL)
	_, owner := provisionTenant(t, client, "paging-co")

	for i := 0; i < 12; i++ {
		_, err := owner.CreateObservation(t.Context(), sitesdk.ObservationRequest{
			Title:    "Observation " + strings.Repeat("x", i+1),
			Severity: "LOW",
		})
		require.NoError(t, err)
	}

	first, err := owner.ListObservations(t.Context(), sitesdk.ObservationListQuery{Page: 1})
	require.NoError(t, err)
	require.Equal(t, 12, first.Total)
	require.Len(t, first.Items, 10)
	require.Equal(t, 10, first.PageSize)

	second, err := owner.ListObservations(t.Context(), sitesdk.ObservationListQuery{Page: 2})
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	require.Equal(t, 2, second.Page)
}
