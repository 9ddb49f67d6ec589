package http

import (
	"errors"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

// writeServiceError maps the service failure taxonomy onto HTTP statuses.
// Anything unmatched is a 500 with the detail kept out of the response body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, service.ErrValidation):
		status, code = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, service.ErrInviteInvalid):
		status, code = http.StatusBadRequest, "invite_invalid"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, service.ErrForbidden):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrDuplicateIdentity):
		status, code = http.StatusConflict, "duplicate_identity"
	case errors.Is(err, service.ErrCapacityExceeded):
		status, code = http.StatusConflict, "capacity_exceeded"
	case errors.Is(err, service.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, sitesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Internal server error",
		})
		return
	}

	httpx.WriteJSON(w, status, sitesdk.ErrorResponse{
		Error:            code,
		ErrorDescription: err.Error(),
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, sitesdk.ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: desc,
	})
}
