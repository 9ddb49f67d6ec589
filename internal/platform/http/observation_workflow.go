package http

import (
	"encoding/json"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/internal/platform/telemetry"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type ObservationRectifyHandler struct {
	ObservationService *service.ObservationService
	Actors             *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Rectify Observation Endpoint
//	@Description	Submit the fix report for an observation. Only the assigned action owner may rectify.
//	@Description	Moves the observation to AWAITING_VERIFICATION; resubmission overwrites the previous report.
//	@Tags			Observations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Observation ID"
//	@Param			request	body		sitesdk.RectifyRequest	true	"Fix report"
//	@Success		200		{object}	sitesdk.ObservationResponse
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/observations/{id}/rectify [post].
func (h *ObservationRectifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	var req sitesdk.RectifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	obs, err := h.ObservationService.Rectify(r.Context(), actor, r.PathValue("id"), service.RectifyInput{
		Notes:      req.Notes,
		PhotoAfter: req.PhotoAfter,
		TargetDate: req.TargetDate,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	telemetry.ObservationTransitionsTotal.WithLabelValues(string(obs.Status)).Inc()
	httpx.WriteJSON(w, http.StatusOK, observationResponse(obs))
}

type ObservationVerifyHandler struct {
	ObservationService *service.ObservationService
	Actors             *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Verify Observation Endpoint
//	@Description	Rule on a submitted rectification. Manager only. decision=approve closes the observation and
//	@Description	stamps date_closed; any other decision returns it to IN_PROGRESS for rework.
//	@Tags			Observations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Observation ID"
//	@Param			request	body		sitesdk.VerifyRequest	true	"Ruling"
//	@Success		200		{object}	sitesdk.ObservationResponse
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/observations/{id}/verify [post].
func (h *ObservationVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	var req sitesdk.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Decision == "" {
		writeBadRequest(w, "decision is required")
		return
	}

	obs, err := h.ObservationService.Verify(r.Context(), actor, r.PathValue("id"), req.Decision == "approve")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	telemetry.ObservationTransitionsTotal.WithLabelValues(string(obs.Status)).Inc()
	httpx.WriteJSON(w, http.StatusOK, observationResponse(obs))
}

type ObservationArchiveHandler struct {
	ObservationService *service.ObservationService
	Actors             *ActorResolver
	Restore            bool
}

// ServeHTTP godoc
//
//	@Summary		Archive / Restore Observation Endpoint
//	@Description	Flip an observation's archived flag without touching its workflow state. Manager only.
//	@Tags			Observations
//	@Produce		json
//	@Param			id	path		string	true	"Observation ID"
//	@Success		200	{object}	sitesdk.ObservationResponse
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/observations/{id}/archive [post].
func (h *ObservationArchiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	var (
		obs domain.Observation
		err error
	)
	if h.Restore {
		obs, err = h.ObservationService.Restore(r.Context(), actor, r.PathValue("id"))
	} else {
		obs, err = h.ObservationService.Archive(r.Context(), actor, r.PathValue("id"))
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, observationResponse(obs))
}

type ObservationDeleteHandler struct {
	ObservationService *service.ObservationService
	Actors             *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Delete Observation Endpoint
//	@Description	Permanently remove an observation. Platform superusers only.
//	@Tags			Observations
//	@Param			id	path	string	true	"Observation ID"
//	@Success		204	"deleted"
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/observations/{id} [delete].
func (h *ObservationDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	if err := h.ObservationService.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
