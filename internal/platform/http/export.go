package http

import (
	"encoding/csv"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

type ExportHandler struct {
	ReportService *service.ReportService
	Actors        *ActorResolver
}

// ServeHTTP godoc
//
//	@Summary		Observations CSV Export Endpoint
//	@Description	Download all of the caller's organization's observations as CSV with the fixed column order
//	@Description	ID, Title, Description, Location, Status, Observer, Created At. Gated on the plan's exports flag.
//	@Tags			Reports
//	@Produce		text/csv
//	@Success		200	{string}	string					"CSV payload"
//	@Failure		401	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/exports/observations.csv [get].
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.Actors.resolveActor(w, r)
	if !ok {
		return
	}

	rows, err := h.ReportService.ExportRows(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="observations.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(service.ExportHeader); err != nil {
		slogx.FromContext(r.Context()).Error("csv write failed", "err", err)
		return
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			slogx.FromContext(r.Context()).Error("csv write failed", "err", err)
			return
		}
	}
	cw.Flush()
}
