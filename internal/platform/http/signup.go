package http

import (
	"encoding/json"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/internal/platform/telemetry"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

type SignupHandler struct {
	SignupService *service.SignupService
	AuthService   *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Organization Signup Endpoint
//	@Description	Provision a new organization with its owning user and a Free-plan subscription, all in one transaction.
//	@Description	Returns an active session for the owner.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sitesdk.SignupRequest	true	"Signup request"
//	@Success		201		{object}	sitesdk.SignupResponse	"organization, access_token, user"
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sitesdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	result, err := h.SignupService.CreateOrganizationOwner(ctx, service.SignupInput{
		OrganizationName:   req.OrganizationName,
		OrganizationDomain: req.OrganizationDomain,
		Email:              req.Email,
		Password:           req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.AuthService.IssueSession(ctx, result.User)
	if err != nil {
		log.Error("failed to issue session after signup", "err", err)
		writeServiceError(w, r, err)
		return
	}

	telemetry.SignupsTotal.Inc()

	httpx.WriteJSON(w, http.StatusCreated, sitesdk.SignupResponse{
		Organization: sitesdk.OrganizationResponse{
			ID:        result.Organization.ID,
			Name:      result.Organization.Name,
			Domain:    result.Organization.Domain,
			CreatedAt: result.Organization.CreatedAt,
		},
		SessionResponse: sitesdk.SessionResponse{
			AccessToken: session.AccessToken,
			TokenType:   session.TokenType,
			ExpiresIn:   session.ExpiresIn,
			User:        userResponse(session.User),
		},
	})
}
