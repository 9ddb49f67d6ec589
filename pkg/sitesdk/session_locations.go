package sitesdk

import (
	"context"
	"net/http"
)

// CreateLocation adds a lookup location. Posting an existing name returns
// the existing row rather than failing.
func (s *Session) CreateLocation(ctx context.Context, name string) (*LocationResponse, error) {
	var out LocationResponse
	if err := s.postJSON(ctx, "/v1/locations", LocationRequest{Name: name}, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLocations returns every location available for tagging observations.
func (s *Session) ListLocations(ctx context.Context) (*LocationListResponse, error) {
	var out LocationListResponse
	if err := s.getJSON(ctx, "/v1/locations", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
