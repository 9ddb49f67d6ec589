package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/internal/platform/telemetry"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type ObservationCreateHandler struct {
	ObservationService *service.ObservationService
	Actors             *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Create Observation Endpoint
//	@Description	Log a new safety observation in the caller's organization. Observer or manager capability required.
//	@Description	Refused with capacity_exceeded once the plan's observation ceiling is reached.
//	@Tags			Observations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sitesdk.ObservationRequest	true	"Observation"
//	@Success		201		{object}	sitesdk.ObservationResponse
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/observations [post].
func (h *ObservationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	var req sitesdk.ObservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	in := service.CreateObservationInput{
		Title:       req.Title,
		Description: req.Description,
		LocationID:  req.LocationID,
		Severity:    domain.Severity(req.Severity),
		AssignedTo:  req.AssignedTo,
		TargetDate:  req.TargetDate,
	}
	if req.DateObserved != nil {
		in.DateObserved = *req.DateObserved
	}

	obs, err := h.ObservationService.Create(r.Context(), actor, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	telemetry.ObservationsCreatedTotal.WithLabelValues(string(obs.Severity)).Inc()

	httpx.WriteJSON(w, http.StatusCreated, observationResponse(obs))
}

type ObservationListHandler struct {
	ObservationService *service.ObservationService
	Actors             *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		List Observations Endpoint
//	@Description	One page of the caller's organization's observations, newest date_observed first, page size 10.
//	@Description	Supports q (free text over title, description, location name and observer email), status, severity,
//	@Description	page, and archived=1 for the archive view.
//	@Tags			Observations
//	@Produce		json
//	@Param			q			query		string	false	"Free-text filter"
//	@Param			status		query		string	false	"Status filter (OPEN, AWAITING_VERIFICATION, IN_PROGRESS, CLOSED)"
//	@Param			severity	query		string	false	"Severity filter (LOW, MEDIUM, HIGH)"
//	@Param			page		query		int		false	"1-based page number"
//	@Param			archived	query		bool	false	"List archived observations instead of live ones"
//	@Success		200			{object}	sitesdk.ObservationListResponse
//	@Failure		400			{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/observations [get].
func (h *ObservationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	q := service.ListQuery{
		Search:   r.URL.Query().Get("q"),
		Archived: r.URL.Query().Get("archived") == "1" || r.URL.Query().Get("archived") == "true",
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			writeBadRequest(w, "unknown status filter")
			return
		}
		q.Status = status
	}
	if raw := r.URL.Query().Get("severity"); raw != "" {
		severity, err := domain.ParseSeverity(raw)
		if err != nil {
			writeBadRequest(w, "unknown severity filter")
			return
		}
		q.Severity = severity
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			writeBadRequest(w, "page must be a positive integer")
			return
		}
		q.Page = page
	}

	page, err := h.ObservationService.List(r.Context(), actor, q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := sitesdk.ObservationListResponse{
		Items:    make([]sitesdk.ObservationResponse, 0, len(page.Items)),
		Total:    page.Total,
		Page:     max(q.Page, 1),
		PageSize: service.PageSize,
	}
	for _, obs := range page.Items {
		resp.Items = append(resp.Items, observationResponse(obs))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type ObservationGetHandler struct {
	ObservationService *service.ObservationService
	Actors             *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Get Observation Endpoint
//	@Description	Fetch a single observation. Requests for another tenant's observation return 403, never a masked 404.
//	@Tags			Observations
//	@Produce		json
//	@Param			id	path		string	true	"Observation ID"
//	@Success		200	{object}	sitesdk.ObservationResponse
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/observations/{id} [get].
func (h *ObservationGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	obs, err := h.ObservationService.Get(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, observationResponse(obs))
}
