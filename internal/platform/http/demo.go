package http

import (
	"encoding/json"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type DemoRequestHandler struct {
	DemoService *service.DemoService
}

// ServeHTTP godoc
//
//	@Summary		Demo Request Endpoint
//	@Description	Public marketing form: store a request-a-demo lead.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sitesdk.DemoRequestRequest	true	"Demo request"
//	@Success		201		{object}	sitesdk.DemoRequestResponse
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/demo-requests [post].
func (h *DemoRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req sitesdk.DemoRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	stored, err := h.DemoService.Submit(r.Context(), service.DemoRequestInput{
		FullName:       req.FullName,
		Email:          req.Email,
		WhatsappNumber: req.WhatsappNumber,
		Company:        req.Company,
		JobTitle:       req.JobTitle,
		Message:        req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sitesdk.DemoRequestResponse{
		ID:        stored.ID,
		CreatedAt: stored.CreatedAt,
	})
}

type DemoListHandler struct {
	DemoService *service.DemoService
	Actors      *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Demo Request List Endpoint
//	@Description	List stored demo requests, newest first. Superusers only.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	sitesdk.DemoRequestListResponse
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/demo-requests [get].
func (h *DemoListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	requests, err := h.DemoService.List(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items := make([]sitesdk.DemoRequestSummary, 0, len(requests))
	for _, dr := range requests {
		items = append(items, sitesdk.DemoRequestSummary{
			ID:             dr.ID,
			FullName:       dr.FullName,
			Email:          dr.Email,
			WhatsappNumber: dr.WhatsappNumber,
			Company:        dr.Company,
			JobTitle:       dr.JobTitle,
			Message:        dr.Message,
			CreatedAt:      dr.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, sitesdk.DemoRequestListResponse{Items: items})
}
