package service

import (
	"context"
	"testing"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestDashboardAggregates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	actionOwner := newTestMember(t, st, owner.OrganizationID, domain.RoleSet{domain.RoleActionOwner})
	obsSvc := &ObservationService{Store: st}

	// Two open highs, one closed medium, one overdue low.
	for i := 0; i < 2; i++ {
		_, err := obsSvc.Create(ctx, owner, CreateObservationInput{
			Title:    "high finding",
			Severity: domain.SeverityHigh,
		})
		require.NoError(t, err)
	}

	closed, err := obsSvc.Create(ctx, owner, CreateObservationInput{
		Title:      "medium finding",
		Severity:   domain.SeverityMedium,
		AssignedTo: actionOwner.ID,
	})
	require.NoError(t, err)
	_, err = obsSvc.Rectify(ctx, actionOwner, closed.ID, RectifyInput{Notes: "fixed"})
	require.NoError(t, err)
	_, err = obsSvc.Verify(ctx, owner, closed.ID, true)
	require.NoError(t, err)

	past := time.Now().UTC().Add(-48 * time.Hour)
	_, err = obsSvc.Create(ctx, owner, CreateObservationInput{
		Title:      "low overdue",
		Severity:   domain.SeverityLow,
		TargetDate: &past,
	})
	require.NoError(t, err)

	// A rejected verification leaves one observation in rework; it counts
	// toward ByStatus and Total but not toward the Open KPI.
	rework, err := obsSvc.Create(ctx, owner, CreateObservationInput{
		Title:      "medium rework",
		Severity:   domain.SeverityMedium,
		AssignedTo: actionOwner.ID,
	})
	require.NoError(t, err)
	_, err = obsSvc.Rectify(ctx, actionOwner, rework.ID, RectifyInput{Notes: "first pass"})
	require.NoError(t, err)
	_, err = obsSvc.Verify(ctx, owner, rework.ID, false)
	require.NoError(t, err)

	svc := &ReportService{Store: st}
	d, err := svc.BuildDashboard(ctx, owner)
	require.NoError(t, err)

	require.Equal(t, 5, d.Total)
	require.Equal(t, 3, d.Open)
	require.Equal(t, 1, d.Closed)
	require.Equal(t, 1, d.Overdue)
	require.Equal(t, 2, d.BySeverity[domain.SeverityHigh])
	require.Equal(t, 2, d.BySeverity[domain.SeverityMedium])
	require.Equal(t, 1, d.ByStatus[domain.StatusClosed])
	require.Equal(t, 1, d.ByStatus[domain.StatusInProgress])
	require.Equal(t, 3, d.ByStatus[domain.StatusOpen])

	month := time.Now().UTC().Format("2006-01")
	require.Equal(t, 5, d.ByMonth[month])
}

func TestDashboardExcludesOtherTenants(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, ownerA := newTestOrg(t, st, "acme")
	_, ownerB := newTestOrg(t, st, "borg")
	obsSvc := &ObservationService{Store: st}

	_, err := obsSvc.Create(ctx, ownerA, CreateObservationInput{
		Title:    "a-side",
		Severity: domain.SeverityLow,
	})
	require.NoError(t, err)

	svc := &ReportService{Store: st}
	d, err := svc.BuildDashboard(ctx, ownerB)
	require.NoError(t, err)
	require.Zero(t, d.Total)
}

func TestExportGatedOnPlan(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	svc := &ReportService{Store: st}

	// Free plan has exports off.
	_, err := svc.ExportRows(ctx, owner)
	require.ErrorIs(t, err, ErrForbidden)

	// Moving the tenant to a plan with exports opens the gate.
	now := time.Now().UTC()
	paid := domain.Plan{
		ID:                idx.New().String(),
		Name:              "Growth",
		PriceMonthlyCents: 4900,
		MaxUsers:          25,
		MaxObservations:   1000,
		AdvancedDashboard: true,
		ExportsEnabled:    true,
		CreatedAt:         now,
	}
	require.NoError(t, st.Plans().CreatePlan(ctx, paid))
	require.NoError(t, st.Subscriptions().UpdateSubscriptionPlan(ctx, owner.OrganizationID, paid.ID))

	loc := newTestLocation(t, st, "Dock 3")
	obsSvc := &ObservationService{Store: st}
	obs, err := obsSvc.Create(ctx, owner, CreateObservationInput{
		Title:       "Exported finding",
		Description: "detail",
		LocationID:  loc.ID,
		Severity:    domain.SeverityHigh,
	})
	require.NoError(t, err)

	rows, err := svc.ExportRows(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(ExportHeader))
	require.Equal(t, obs.ID, rows[0][0])
	require.Equal(t, "Exported finding", rows[0][1])
	require.Equal(t, "Dock 3", rows[0][3])
	require.Equal(t, "OPEN", rows[0][4])
	require.Equal(t, owner.Email, rows[0][5])
}

func TestExportIncludesArchived(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	now := time.Now().UTC()
	paid := domain.Plan{
		ID:              idx.New().String(),
		Name:            "Growth",
		MaxUsers:        25,
		MaxObservations: 1000,
		ExportsEnabled:  true,
		CreatedAt:       now,
	}
	require.NoError(t, st.Plans().CreatePlan(ctx, paid))
	require.NoError(t, st.Subscriptions().UpdateSubscriptionPlan(ctx, owner.OrganizationID, paid.ID))

	obsSvc := &ObservationService{Store: st}
	live, err := obsSvc.Create(ctx, owner, CreateObservationInput{
		Title:    "still live",
		Severity: domain.SeverityLow,
	})
	require.NoError(t, err)
	archived, err := obsSvc.Create(ctx, owner, CreateObservationInput{
		Title:    "tucked away",
		Severity: domain.SeverityLow,
	})
	require.NoError(t, err)
	_, err = obsSvc.Archive(ctx, owner, archived.ID)
	require.NoError(t, err)

	// The export is the permanent record; archival hides rows from listings,
	// not from the spreadsheet.
	rows, err := (&ReportService{Store: st}).ExportRows(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	ids := []string{rows[0][0], rows[1][0]}
	require.ElementsMatch(t, []string{live.ID, archived.ID}, ids)
}

func TestExportRequiresCurrentSubscription(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "acme")
	now := time.Now().UTC()
	paid := domain.Plan{
		ID:              idx.New().String(),
		Name:            "Growth",
		MaxUsers:        25,
		MaxObservations: 1000,
		ExportsEnabled:  true,
		CreatedAt:       now,
	}
	require.NoError(t, st.Plans().CreatePlan(ctx, paid))
	require.NoError(t, st.Subscriptions().UpdateSubscriptionPlan(ctx, owner.OrganizationID, paid.ID))

	lapsed := now.Add(-time.Hour)
	require.NoError(t, st.Subscriptions().UpdateSubscriptionState(ctx, owner.OrganizationID, true, &lapsed))
	_, err := (&ReportService{Store: st}).ExportRows(ctx, owner)
	require.ErrorIs(t, err, ErrForbidden)

	// Renewal reopens the gate.
	renewed := now.AddDate(0, 1, 0)
	require.NoError(t, st.Subscriptions().UpdateSubscriptionState(ctx, owner.OrganizationID, true, &renewed))
	_, err = (&ReportService{Store: st}).ExportRows(ctx, owner)
	require.NoError(t, err)

	// An explicitly deactivated subscription closes it regardless of expiry.
	require.NoError(t, st.Subscriptions().UpdateSubscriptionState(ctx, owner.OrganizationID, false, &renewed))
	_, err = (&ReportService{Store: st}).ExportRows(ctx, owner)
	require.ErrorIs(t, err, ErrForbidden)
}
