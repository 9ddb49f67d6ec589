package http

import (
	"encoding/json"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type LocationCreateHandler struct {
	LocationService *service.LocationService
	Actors          *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Create Location Endpoint
//	@Description	Add a location to the shared lookup table. Creating an existing name returns the existing row,
//	@Description	matching the inline add-location flow on the observation form.
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sitesdk.LocationRequest	true	"Location"
//	@Success		201		{object}	sitesdk.LocationResponse
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/locations [post].
func (h *LocationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Actors.resolveActor(w, r); !ok {
		return
	}

	var req sitesdk.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	loc, err := h.LocationService.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sitesdk.LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		CreatedAt: loc.CreatedAt,
	})
}

type LocationListHandler struct {
	LocationService *service.LocationService
	Actors          *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		List Locations Endpoint
//	@Description	All lookup locations in name order.
//	@Tags			Locations
//	@Produce		json
//	@Success		200	{object}	sitesdk.LocationListResponse
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/locations [get].
func (h *LocationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Actors.resolveActor(w, r); !ok {
		return
	}

	locations, err := h.LocationService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := sitesdk.LocationListResponse{Locations: make([]sitesdk.LocationResponse, 0, len(locations))}
	for _, loc := range locations {
		resp.Locations = append(resp.Locations, sitesdk.LocationResponse{
			ID:        loc.ID,
			Name:      loc.Name,
			CreatedAt: loc.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
