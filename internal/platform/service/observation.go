package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/pkg/idx"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

// PageSize is the fixed listing page size.
const PageSize = 10

type ObservationService struct {
	Store store.Store
}

// CreateObservationInput carries the fields an observer fills in when
// logging a finding.
type CreateObservationInput struct {
	Title        string
	Description  string
	LocationID   string
	Severity     domain.Severity
	AssignedTo   string     // optional action owner
	TargetDate   *time.Time // optional rectification deadline
	DateObserved time.Time  // zero means now
}

// Create logs a new observation in the actor's organization. The plan's
// observation ceiling is enforced before any write; hitting it is a soft
// failure the caller can present as an upgrade prompt.
func (s *ObservationService) Create(ctx context.Context, actor domain.User, in CreateObservationInput) (domain.Observation, error) {
	log := slogx.FromContext(ctx)

	if !Can(actor, ActionCreate, nil) {
		return domain.Observation{}, fmt.Errorf("%w: organization membership required", ErrForbidden)
	}
	if actor.OrganizationID == "" {
		return domain.Observation{}, fmt.Errorf("%w: actor has no organization", ErrValidation)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return domain.Observation{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if _, err := domain.ParseSeverity(string(in.Severity)); err != nil {
		return domain.Observation{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if in.LocationID != "" {
		if _, err := s.Store.Locations().GetLocationByID(ctx, in.LocationID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Observation{}, fmt.Errorf("%w: unknown location", ErrValidation)
			}
			return domain.Observation{}, err
		}
	}

	// An assignee must be a member of the same organization.
	if in.AssignedTo != "" {
		assignee, err := s.Store.Users().GetUserByID(ctx, in.AssignedTo)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Observation{}, fmt.Errorf("%w: unknown assignee", ErrValidation)
			}
			return domain.Observation{}, err
		}
		if assignee.OrganizationID != actor.OrganizationID {
			return domain.Observation{}, fmt.Errorf("%w: assignee belongs to another organization", ErrValidation)
		}
	}

	_, plan, err := entitlementsFor(ctx, s.Store, actor.OrganizationID)
	if err != nil {
		return domain.Observation{}, err
	}
	if err := checkObservationCapacity(ctx, s.Store, actor.OrganizationID, plan); err != nil {
		return domain.Observation{}, err
	}

	now := time.Now().UTC()
	dateObserved := in.DateObserved
	if dateObserved.IsZero() {
		dateObserved = now
	}

	obs := domain.Observation{
		ID:             idx.New().String(),
		OrganizationID: actor.OrganizationID,
		Title:          in.Title,
		Description:    strings.TrimSpace(in.Description),
		LocationID:     in.LocationID,
		Severity:       in.Severity,
		Status:         domain.StatusOpen,
		ObserverID:     actor.ID,
		AssignedTo:     in.AssignedTo,
		TargetDate:     in.TargetDate,
		DateObserved:   dateObserved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Store.Observations().CreateObservation(ctx, obs); err != nil {
		return domain.Observation{}, err
	}

	log.Info("observation created",
		slog.String("observation_id", obs.ID),
		slog.String("org_id", obs.OrganizationID),
		slog.String("severity", string(obs.Severity)),
	)

	return obs, nil
}

// Get fetches a single observation, tenant-checked. A cross-tenant id yields
// Forbidden, never a masked not-found.
func (s *ObservationService) Get(ctx context.Context, actor domain.User, id string) (domain.Observation, error) {
	obs, err := s.load(ctx, actor, id)
	if err != nil {
		return domain.Observation{}, err
	}
	if !Can(actor, ActionView, &obs) {
		return domain.Observation{}, fmt.Errorf("%w: no view capability", ErrForbidden)
	}
	return obs, nil
}

// ListQuery narrows the observation listing.
type ListQuery struct {
	Search   string
	Status   domain.Status
	Severity domain.Severity
	Archived bool
	Page     int // 1-based
}

// List returns one page of the actor's organization's observations, newest
// date_observed first.
func (s *ObservationService) List(ctx context.Context, actor domain.User, q ListQuery) (store.ObservationPage, error) {
	if actor.OrganizationID == "" {
		return store.ObservationPage{}, fmt.Errorf("%w: actor has no organization", ErrForbidden)
	}
	if q.Page < 1 {
		q.Page = 1
	}

	filter := store.ObservationFilter{
		Search:   q.Search,
		Status:   q.Status,
		Severity: q.Severity,
		Archived: q.Archived,
	}
	return s.Store.Observations().ListObservations(ctx, actor.OrganizationID, filter, PageSize, (q.Page-1)*PageSize)
}

// RectifyInput is the action owner's fix report.
type RectifyInput struct {
	Notes      string
	PhotoAfter string
	TargetDate *time.Time
}

// Rectify records the fix and moves the observation to awaiting verification.
// Re-submission while already awaiting is allowed and overwrites the fields.
func (s *ObservationService) Rectify(ctx context.Context, actor domain.User, id string, in RectifyInput) (domain.Observation, error) {
	log := slogx.FromContext(ctx)

	obs, err := s.load(ctx, actor, id)
	if err != nil {
		return domain.Observation{}, err
	}
	if !Can(actor, ActionRectify, &obs) {
		return domain.Observation{}, fmt.Errorf("%w: only the assigned action owner can rectify", ErrForbidden)
	}
	if obs.IsArchived {
		return domain.Observation{}, fmt.Errorf("%w: archived observations are read-only", ErrConflict)
	}
	if obs.Status == domain.StatusClosed {
		return domain.Observation{}, fmt.Errorf("%w: observation already closed", ErrConflict)
	}

	obs.RectificationNotes = strings.TrimSpace(in.Notes)
	obs.PhotoAfter = in.PhotoAfter
	if in.TargetDate != nil {
		obs.TargetDate = in.TargetDate
	}
	obs.Status = domain.StatusAwaitingVerification

	if err := s.Store.Observations().UpdateObservation(ctx, obs); err != nil {
		return domain.Observation{}, err
	}

	log.Info("observation rectified",
		slog.String("observation_id", obs.ID),
		slog.String("actor_id", actor.ID),
	)

	return obs, nil
}

// Verify is the manager's ruling on a submitted rectification. Approval
// closes the observation and stamps date_closed; rejection sends it back to
// in-progress with date_closed untouched.
func (s *ObservationService) Verify(ctx context.Context, actor domain.User, id string, approve bool) (domain.Observation, error) {
	log := slogx.FromContext(ctx)

	obs, err := s.load(ctx, actor, id)
	if err != nil {
		return domain.Observation{}, err
	}
	if !Can(actor, ActionVerify, &obs) {
		return domain.Observation{}, fmt.Errorf("%w: manager capability required", ErrForbidden)
	}
	if obs.IsArchived {
		return domain.Observation{}, fmt.Errorf("%w: archived observations are read-only", ErrConflict)
	}
	if obs.Status != domain.StatusAwaitingVerification {
		return domain.Observation{}, fmt.Errorf("%w: observation is not awaiting verification", ErrConflict)
	}

	if approve {
		now := time.Now().UTC()
		obs.Status = domain.StatusClosed
		obs.DateClosed = &now
	} else {
		obs.Status = domain.StatusInProgress
	}

	if err := s.Store.Observations().UpdateObservation(ctx, obs); err != nil {
		return domain.Observation{}, err
	}

	log.Info("observation verified",
		slog.String("observation_id", obs.ID),
		slog.Bool("approved", approve),
	)

	return obs, nil
}

// Archive hides an observation from default listings without touching its
// workflow state.
func (s *ObservationService) Archive(ctx context.Context, actor domain.User, id string) (domain.Observation, error) {
	return s.setArchived(ctx, actor, id, true)
}

// Restore brings an archived observation back, workflow state intact.
func (s *ObservationService) Restore(ctx context.Context, actor domain.User, id string) (domain.Observation, error) {
	return s.setArchived(ctx, actor, id, false)
}

func (s *ObservationService) setArchived(ctx context.Context, actor domain.User, id string, archived bool) (domain.Observation, error) {
	obs, err := s.load(ctx, actor, id)
	if err != nil {
		return domain.Observation{}, err
	}

	action := ActionArchive
	if !archived {
		action = ActionRestore
	}
	if !Can(actor, action, &obs) {
		return domain.Observation{}, fmt.Errorf("%w: manager capability required", ErrForbidden)
	}
	if obs.IsArchived == archived {
		return obs, nil // idempotent
	}

	obs.IsArchived = archived
	if err := s.Store.Observations().UpdateObservation(ctx, obs); err != nil {
		return domain.Observation{}, err
	}
	return obs, nil
}

// Delete permanently removes an observation. Superusers only; the tenant
// check still runs first so the policy ordering is uniform.
func (s *ObservationService) Delete(ctx context.Context, actor domain.User, id string) error {
	log := slogx.FromContext(ctx)

	obs, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if !Can(actor, ActionDelete, &obs) {
		return fmt.Errorf("%w: delete is a platform-operator action", ErrForbidden)
	}

	if err := s.Store.Observations().DeleteObservation(ctx, obs.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	log.Info("observation deleted",
		slog.String("observation_id", obs.ID),
		slog.String("actor_id", actor.ID),
	)
	return nil
}

// load fetches and tenant-checks an observation. The tenant check runs before
// any capability predicate so cross-tenant probing always sees Forbidden.
func (s *ObservationService) load(ctx context.Context, actor domain.User, id string) (domain.Observation, error) {
	obs, err := s.Store.Observations().GetObservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Observation{}, ErrNotFound
		}
		return domain.Observation{}, err
	}
	if err := requireTenant(actor, obs.OrganizationID); err != nil {
		return domain.Observation{}, err
	}
	return obs, nil
}
