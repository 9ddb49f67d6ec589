package sitesdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Dashboard returns the KPI aggregates for the caller's organization.
func (s *Session) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := s.getJSON(ctx, "/v1/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportObservationsCSV downloads the full observation export. Requires a
// plan with exports enabled.
func (s *Session) ExportObservationsCSV(ctx context.Context) ([]byte, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/exports/observations.csv", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}
	return body, nil
}

// ListDemoRequests returns stored demo leads. Superusers only.
func (s *Session) ListDemoRequests(ctx context.Context) (*DemoRequestListResponse, error) {
	var out DemoRequestListResponse
	if err := s.getJSON(ctx, "/v1/demo-requests", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
