package http

import (
	"errors"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

// ActorResolver turns the authenticated user id from the request context into
// the current user row. The database is the authority on roles and tenancy;
// token claims only prove identity, so a role change takes effect on the next
// request rather than at token expiry.
type ActorResolver struct {
	Store store.Store
}

// Resolve loads the acting user, rejecting deactivated accounts.
func (a *ActorResolver) Resolve(r *http.Request) (domain.User, error) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		return domain.User{}, errors.New("no authenticated user in context")
	}

	user, err := a.Store.Users().GetUserByID(r.Context(), userID)
	if err != nil {
		return domain.User{}, err
	}
	if !user.Active {
		return domain.User{}, errors.New("account deactivated")
	}
	return user, nil
}

// resolveActor writes the 401 itself so handlers can one-line the guard.
func (a *ActorResolver) resolveActor(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user, err := a.Resolve(r)
	if err != nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, sitesdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return domain.User{}, false
	}
	return user, true
}

func userResponse(u domain.User) sitesdk.UserResponse {
	return sitesdk.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		OrganizationID: u.OrganizationID,
		Roles:          u.Roles.Strings(),
		Superuser:      u.Superuser,
		Active:         u.Active,
		CreatedAt:      u.CreatedAt,
	}
}

func observationResponse(o domain.Observation) sitesdk.ObservationResponse {
	return sitesdk.ObservationResponse{
		ID:                 o.ID,
		OrganizationID:     o.OrganizationID,
		Title:              o.Title,
		Description:        o.Description,
		LocationID:         o.LocationID,
		Severity:           string(o.Severity),
		Status:             string(o.Status),
		ObserverID:         o.ObserverID,
		AssignedTo:         o.AssignedTo,
		RectificationNotes: o.RectificationNotes,
		PhotoAfter:         o.PhotoAfter,
		TargetDate:         o.TargetDate,
		DateObserved:       o.DateObserved,
		DateClosed:         o.DateClosed,
		IsArchived:         o.IsArchived,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}
