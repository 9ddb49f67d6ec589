package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/internal/platform/telemetry"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type InviteMintHandler struct {
	InviteService *service.InviteService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Mint User Invite Endpoint
//	@Description	Mint an invite token binding an email address to the caller's organization and a role. Manager only.
//	@Description	The raw token is returned exactly once; only its fingerprint is stored.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sitesdk.InviteRequest	true	"Invite request"
//	@Success		201		{object}	sitesdk.InviteResponse	"invite_token, email, role, expires_at"
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	var req sitesdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeBadRequest(w, "role must be observer, action_owner or manager")
		return
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	token, invite, err := h.InviteService.MintInvite(r.Context(), actor, req.Email, role, ttl)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	telemetry.InvitesSentTotal.Inc()

	httpx.WriteJSON(w, http.StatusCreated, sitesdk.InviteResponse{
		InviteToken: token,
		Email:       invite.Email,
		Role:        string(invite.Role),
		ExpiresAt:   invite.ExpiresAt,
	})
}

type InviteListHandler struct {
	InviteService *service.InviteService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		List Invites Endpoint
//	@Description	List the caller's organization's invites, newest first. Manager only. Tokens are never included.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	sitesdk.InviteListResponse	"invites"
//	@Failure		401	{object}	sitesdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	invites, err := h.InviteService.ListInvites(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := sitesdk.InviteListResponse{Invites: make([]sitesdk.InviteSummary, 0, len(invites))}
	for _, inv := range invites {
		resp.Invites = append(resp.Invites, sitesdk.InviteSummary{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      string(inv.Role),
			Used:      inv.Used,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type InviteAcceptHandler struct {
	InviteService *service.InviteService
	AuthService   *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invite Endpoint
//	@Description	Redeem an invite token, creating the user account with the invited role and organization.
//	@Description	Redemption is atomic: an invite is consumable exactly once. Returns an active session.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sitesdk.AcceptInviteRequest	true	"Accept request"
//	@Success		201		{object}	sitesdk.SessionResponse		"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	sitesdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	sitesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	sitesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/invites/accept [post].
func (h *InviteAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req sitesdk.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	user, err := h.InviteService.AcceptInvite(r.Context(), req.Token, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.AuthService.IssueSession(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sitesdk.SessionResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		User:        userResponse(session.User),
	})
}
