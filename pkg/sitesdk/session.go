package sitesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is an authenticated handle on the API. Tokens are not refreshed;
// when one expires, log in again.
type Session struct {
	client      *SDKClient
	accessToken string
}

// AccessToken returns the raw bearer token.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// Organization returns the caller's organization and plan entitlements.
func (s *Session) Organization(ctx context.Context) (*OrganizationDetailResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/organization", nil, nil)
	if err != nil {
		return nil, err
	}

	var out OrganizationDetailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// postJSON is the shared body-in, body-out helper for session endpoints.
func (s *Session) postJSON(ctx context.Context, path string, in, out any, expectedStatus int) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, body, jsonHeaders)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expectedStatus)
}

// getJSON is the shared GET helper for session endpoints.
func (s *Session) getJSON(ctx context.Context, path string, out any) error {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, http.StatusOK)
}
