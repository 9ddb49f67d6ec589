package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestObservationLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	actionOwner := newTestMember(t, st, owner.OrganizationID, domain.RoleSet{domain.RoleActionOwner})
	loc := newTestLocation(t, st, "Warehouse A")

	svc := &ObservationService{Store: st}

	obs, err := svc.Create(ctx, owner, CreateObservationInput{
		Title:       "Blocked fire exit",
		Description: "Pallets stacked against the east exit",
		LocationID:  loc.ID,
		Severity:    domain.SeverityHigh,
		AssignedTo:  actionOwner.ID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOpen, obs.Status)
	require.Equal(t, owner.ID, obs.ObserverID)
	require.Nil(t, obs.DateClosed)

	// Only the assignee can rectify.
	_, err = svc.Rectify(ctx, owner, obs.ID, RectifyInput{Notes: "moved"})
	require.ErrorIs(t, err, ErrForbidden)

	obs, err = svc.Rectify(ctx, actionOwner, obs.ID, RectifyInput{
		Notes:      "Pallets relocated to rack 4",
		PhotoAfter: "photos/after-123.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusAwaitingVerification, obs.Status)

	// Rejection sends it back to rework with date_closed untouched.
	obs, err = svc.Verify(ctx, owner, obs.ID, false)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, obs.Status)
	require.Nil(t, obs.DateClosed)

	// Rework re-enters verification, overwriting the fix report.
	obs, err = svc.Rectify(ctx, actionOwner, obs.ID, RectifyInput{
		Notes:      "Aisle marked as keep-clear, pallets relocated",
		PhotoAfter: "photos/after-124.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusAwaitingVerification, obs.Status)
	require.Equal(t, "Aisle marked as keep-clear, pallets relocated", obs.RectificationNotes)

	obs, err = svc.Verify(ctx, owner, obs.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StatusClosed, obs.Status)
	require.NotNil(t, obs.DateClosed)

	// Closed means closed.
	_, err = svc.Rectify(ctx, actionOwner, obs.ID, RectifyInput{Notes: "again"})
	require.ErrorIs(t, err, ErrConflict)
	_, err = svc.Verify(ctx, owner, obs.ID, true)
	require.ErrorIs(t, err, ErrConflict)
}

func TestObservationStatusSpellingIsCanonical(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	actionOwner := newTestMember(t, st, owner.OrganizationID, domain.RoleSet{domain.RoleActionOwner})
	svc := &ObservationService{Store: st}

	obs, err := svc.Create(ctx, owner, CreateObservationInput{
		Title:      "Loose handrail",
		Severity:   domain.SeverityMedium,
		AssignedTo: actionOwner.ID,
	})
	require.NoError(t, err)

	_, err = svc.Rectify(ctx, actionOwner, obs.ID, RectifyInput{Notes: "tightened"})
	require.NoError(t, err)
	rejected, err := svc.Verify(ctx, owner, obs.ID, false)
	require.NoError(t, err)

	// The rework state round-trips through storage in underscore form, and
	// filtering by that same constant finds it.
	require.Equal(t, "IN_PROGRESS", string(rejected.Status))
	stored, err := st.Observations().GetObservationByID(ctx, obs.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, stored.Status)

	page, err := svc.List(ctx, owner, ListQuery{Status: domain.StatusInProgress})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, obs.ID, page.Items[0].ID)
}

func TestObservationCapacityCeiling(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	svc := &ObservationService{Store: st}

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, owner, CreateObservationInput{
			Title:    fmt.Sprintf("finding %d", i),
			Severity: domain.SeverityLow,
		})
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, owner, CreateObservationInput{
		Title:    "one too many",
		Severity: domain.SeverityLow,
	})
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestObservationArchiveRestorePreservesStatus(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	actionOwner := newTestMember(t, st, owner.OrganizationID, domain.RoleSet{domain.RoleActionOwner})
	svc := &ObservationService{Store: st}

	obs, err := svc.Create(ctx, owner, CreateObservationInput{
		Title:      "Spill near dock",
		Severity:   domain.SeverityMedium,
		AssignedTo: actionOwner.ID,
	})
	require.NoError(t, err)
	obs, err = svc.Rectify(ctx, actionOwner, obs.ID, RectifyInput{Notes: "cleaned"})
	require.NoError(t, err)

	archived, err := svc.Archive(ctx, owner, obs.ID)
	require.NoError(t, err)
	require.True(t, archived.IsArchived)
	require.Equal(t, domain.StatusAwaitingVerification, archived.Status)

	// Archived rows leave the default listing and appear in the archive view.
	live, err := svc.List(ctx, owner, ListQuery{})
	require.NoError(t, err)
	require.Empty(t, live.Items)
	archivedPage, err := svc.List(ctx, owner, ListQuery{Archived: true})
	require.NoError(t, err)
	require.Len(t, archivedPage.Items, 1)

	// Archived rows are read-only for the workflow.
	_, err = svc.Verify(ctx, owner, obs.ID, true)
	require.ErrorIs(t, err, ErrConflict)

	restored, err := svc.Restore(ctx, owner, obs.ID)
	require.NoError(t, err)
	require.False(t, restored.IsArchived)
	require.Equal(t, domain.StatusAwaitingVerification, restored.Status)
}

func TestObservationCrossTenantIsForbidden(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, ownerA := newTestOrg(t, st, "acme")
	_, ownerB := newTestOrg(t, st, "borg")
	svc := &ObservationService{Store: st}

	obs, err := svc.Create(ctx, ownerA, CreateObservationInput{
		Title:    "A-side finding",
		Severity: domain.SeverityLow,
	})
	require.NoError(t, err)

	// Cross-tenant access is Forbidden, not a masked not-found.
	_, err = svc.Get(ctx, ownerB, obs.ID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Verify(ctx, ownerB, obs.ID, true)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Archive(ctx, ownerB, obs.ID)
	require.ErrorIs(t, err, ErrForbidden)

	// And each tenant's listing only ever shows its own rows.
	pageB, err := svc.List(ctx, ownerB, ListQuery{})
	require.NoError(t, err)
	require.Empty(t, pageB.Items)
}

func TestObservationDeleteIsSuperuserOnly(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	svc := &ObservationService{Store: st}

	obs, err := svc.Create(ctx, owner, CreateObservationInput{
		Title:    "to be purged",
		Severity: domain.SeverityLow,
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, owner, obs.ID)
	require.ErrorIs(t, err, ErrForbidden)

	super := owner
	super.Superuser = true
	require.NoError(t, svc.Delete(ctx, super, obs.ID))

	_, err = svc.Get(ctx, owner, obs.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestObservationListSearchAndPaging(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	loc := newTestLocation(t, st, "Loading Bay")
	svc := &ObservationService{Store: st}

	for i := 0; i < 12; i++ {
		in := CreateObservationInput{
			Title:    fmt.Sprintf("routine check %d", i),
			Severity: domain.SeverityLow,
		}
		if i == 0 {
			in.Title = "Forklift near miss"
			in.LocationID = loc.ID
		}
		_, err := svc.Create(ctx, owner, in)
		require.NoError(t, err)
	}

	// Fixed page size of 10, total reported across pages.
	page1, err := svc.List(ctx, owner, ListQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, page1.Items, 10)
	require.Equal(t, 12, page1.Total)
	page2, err := svc.List(ctx, owner, ListQuery{Page: 2})
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)

	// Free text matches titles and location names alike.
	byTitle, err := svc.List(ctx, owner, ListQuery{Search: "near miss"})
	require.NoError(t, err)
	require.Len(t, byTitle.Items, 1)
	byLocation, err := svc.List(ctx, owner, ListQuery{Search: "loading"})
	require.NoError(t, err)
	require.Len(t, byLocation.Items, 1)
	require.Equal(t, byTitle.Items[0].ID, byLocation.Items[0].ID)
}

func TestObservationCreateOpenToAllMembers(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	actionOwner := newTestMember(t, st, owner.OrganizationID, domain.RoleSet{domain.RoleActionOwner})
	svc := &ObservationService{Store: st}

	// An action owner with no other capability can still log a hazard.
	obs, err := svc.Create(ctx, actionOwner, CreateObservationInput{
		Title:    "Leaking hydraulic line",
		Severity: domain.SeverityMedium,
	})
	require.NoError(t, err)
	require.Equal(t, actionOwner.ID, obs.ObserverID)

	roleless := domain.User{ID: idx.New().String(), OrganizationID: owner.OrganizationID}
	_, err = svc.Create(ctx, roleless, CreateObservationInput{
		Title:    "no capability",
		Severity: domain.SeverityLow,
	})
	require.ErrorIs(t, err, ErrForbidden)
}
