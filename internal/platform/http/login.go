package http

import (
	"encoding/json"
	"net/http"

	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/sitesdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Password grant. Returns an EdDSA-signed session token carrying the user's organization and capabilities.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sitesdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	sitesdk.SessionResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	sitesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req sitesdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	session, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sitesdk.SessionResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		User:        userResponse(session.User),
	})
}
