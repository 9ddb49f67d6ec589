package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
)

// exportPageSize bounds how many rows the CSV export pulls per store query.
const exportPageSize = 500

// ReportService aggregates observation data for dashboards and exports.
type ReportService struct {
	Store store.Store
}

// Dashboard is the KPI payload backing the landing view.
type Dashboard struct {
	Total      int                     `json:"total"`
	Open       int                     `json:"open"`
	Closed     int                     `json:"closed"`
	Overdue    int                     `json:"overdue"`
	ByStatus   map[domain.Status]int   `json:"by_status"`
	BySeverity map[domain.Severity]int `json:"by_severity"`
	ByLocation map[string]int          `json:"by_location"`
	ByMonth    map[string]int          `json:"by_month"`
}

// BuildDashboard assembles the actor's organization's KPIs over live
// (unarchived) observations.
func (s *ReportService) BuildDashboard(ctx context.Context, actor domain.User) (Dashboard, error) {
	if actor.OrganizationID == "" {
		return Dashboard{}, fmt.Errorf("%w: actor has no organization", ErrForbidden)
	}
	orgID := actor.OrganizationID
	obs := s.Store.Observations()

	byStatus, err := obs.CountObservationsByStatus(ctx, orgID)
	if err != nil {
		return Dashboard{}, err
	}
	bySeverity, err := obs.CountObservationsBySeverity(ctx, orgID)
	if err != nil {
		return Dashboard{}, err
	}
	byLocation, err := obs.CountObservationsByLocation(ctx, orgID)
	if err != nil {
		return Dashboard{}, err
	}
	byMonth, err := obs.CountObservationsByMonth(ctx, orgID)
	if err != nil {
		return Dashboard{}, err
	}
	overdue, err := obs.CountOverdueObservations(ctx, orgID, time.Now().UTC())
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		Overdue:    overdue,
		ByStatus:   byStatus,
		BySeverity: bySeverity,
		ByLocation: byLocation,
		ByMonth:    byMonth,
	}
	for _, n := range byStatus {
		d.Total += n
	}
	// Open means strictly OPEN; in-flight work shows up in ByStatus.
	d.Open = byStatus[domain.StatusOpen]
	d.Closed = byStatus[domain.StatusClosed]
	return d, nil
}

// ExportHeader is the fixed CSV column order.
var ExportHeader = []string{"ID", "Title", "Description", "Location", "Status", "Observer", "Created At"}

// ExportRows produces the CSV export rows for the actor's organization,
// archived observations included, in listing order. Gated on the plan's
// exports flag and a current subscription.
func (s *ReportService) ExportRows(ctx context.Context, actor domain.User) ([][]string, error) {
	if actor.OrganizationID == "" {
		return nil, fmt.Errorf("%w: actor has no organization", ErrForbidden)
	}

	sub, plan, err := entitlementsFor(ctx, s.Store, actor.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !plan.ExportsEnabled {
		return nil, fmt.Errorf("%w: plan %q does not include exports", ErrForbidden, plan.Name)
	}
	if !sub.Current(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: subscription has lapsed", ErrForbidden)
	}

	locationNames, err := s.locationNames(ctx)
	if err != nil {
		return nil, err
	}
	observerEmails, err := s.observerEmails(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for page := 0; ; page++ {
		batch, err := s.Store.Observations().ListObservations(ctx,
			actor.OrganizationID, store.ObservationFilter{IncludeArchived: true},
			exportPageSize, page*exportPageSize)
		if err != nil {
			return nil, err
		}
		for _, o := range batch.Items {
			rows = append(rows, []string{
				o.ID,
				o.Title,
				o.Description,
				locationNames[o.LocationID],
				string(o.Status),
				observerEmails[o.ObserverID],
				o.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		if len(batch.Items) < exportPageSize {
			return rows, nil
		}
	}
}

func (s *ReportService) locationNames(ctx context.Context) (map[string]string, error) {
	locations, err := s.Store.Locations().ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names, nil
}

func (s *ReportService) observerEmails(ctx context.Context, orgID string) (map[string]string, error) {
	users, err := s.Store.Users().ListUsersByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	emails := make(map[string]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}
	return emails, nil
}
