package http

import (
	"encoding/json"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type MemberListHandler struct {
	TenantService *service.TenantService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		List Members Endpoint
//	@Description	List the caller's organization's user accounts, oldest first. Manager only.
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	sitesdk.MemberListResponse	"members"
//	@Failure		401	{object}	sitesdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members [get].
func (h *MemberListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	members, err := h.TenantService.Members(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := sitesdk.MemberListResponse{Members: make([]sitesdk.UserResponse, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, userResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type MemberRolesHandler struct {
	TenantService *service.TenantService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Update Member Roles Endpoint
//	@Description	Replace a member's role set. Manager only, same organization only.
//	@Description	A manager cannot remove their own manager role.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		sitesdk.UpdateMemberRolesRequest	true	"New role set"
//	@Success		200		{object}	sitesdk.UserResponse			"updated member"
//	@Failure		400		{object}	sitesdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	sitesdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	sitesdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	sitesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{id}/roles [post].
func (h *MemberRolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	var req sitesdk.UpdateMemberRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	roles := domain.RoleSet{}
	for _, raw := range req.Roles {
		role, err := domain.ParseRole(raw)
		if err != nil {
			writeBadRequest(w, "roles must be observer, action_owner or manager")
			return
		}
		roles = roles.Add(role)
	}

	userID := r.PathValue("id")
	if err := h.TenantService.SetMemberRoles(r.Context(), actor, userID, roles); err != nil {
		writeServiceError(w, r, err)
		return
	}

	member, err := h.Actors.Store.Users().GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResponse(member))
}

type MemberDeactivateHandler struct {
	TenantService *service.TenantService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Deactivate Member Endpoint
//	@Description	Disable a member's account. Manager only, same organization only, never yourself.
//	@Description	Takes effect on the member's next request; the seat still counts against the plan.
//	@Tags			Members
//	@Param			id	path	string	true	"User ID"
//	@Success		204	"deactivated"
//	@Failure		400	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{id}/deactivate [post].
func (h *MemberDeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	if err := h.TenantService.DeactivateMember(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
