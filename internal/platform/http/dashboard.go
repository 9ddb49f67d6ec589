package http

import (
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type DashboardHandler struct {
	ReportService *service.ReportService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Endpoint
//	@Description	KPI counts (total, open, closed, overdue) plus status, severity, location and monthly aggregates
//	@Description	over the caller's organization's live observations.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	sitesdk.DashboardResponse
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	d, err := h.ReportService.BuildDashboard(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sitesdk.DashboardResponse{
		Total:      d.Total,
		Open:       d.Open,
		Closed:     d.Closed,
		Overdue:    d.Overdue,
		ByStatus:   statusKeys(d.ByStatus),
		BySeverity: severityKeys(d.BySeverity),
		ByLocation: d.ByLocation,
		ByMonth:    d.ByMonth,
	})
}

func statusKeys(in map[domain.Status]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func severityKeys(in map[domain.Severity]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}
