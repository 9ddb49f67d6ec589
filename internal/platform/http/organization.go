package http

import (
	"net/http"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type OrganizationHandler struct {
	TenantService *service.TenantService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Organization Endpoint
//	@Description	Return the caller's organization together with its plan entitlements.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	sitesdk.OrganizationDetailResponse
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organization [get].
func (h *OrganizationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}
	if actor.OrganizationID == "" {
		writeBadRequest(w, "Account is not attached to an organization")
		return
	}

	org, err := h.TenantService.Organization(r.Context(), actor.OrganizationID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	sub, plan, err := h.TenantService.Entitlements(r.Context(), actor.OrganizationID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sitesdk.OrganizationDetailResponse{
		Organization: sitesdk.OrganizationResponse{
			ID:        org.ID,
			Name:      org.Name,
			Domain:    org.Domain,
			CreatedAt: org.CreatedAt,
		},
		Plan: sitesdk.PlanResponse{
			Name:               plan.Name,
			PriceMonthlyCents:  plan.PriceMonthlyCents,
			MaxUsers:           plan.MaxUsers,
			MaxObservations:    plan.MaxObservations,
			AdvancedDashboard:  plan.AdvancedDashboard,
			ExportsEnabled:     plan.ExportsEnabled,
			SubscriptionActive: sub.Current(time.Now().UTC()),
		},
	})
}
