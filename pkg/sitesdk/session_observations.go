package sitesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ObservationListQuery narrows and pages the observation list.
type ObservationListQuery struct {
	Search   string
	Status   string
	Severity string
	Page     int
	Archived bool
}

func (q ObservationListQuery) encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Severity != "" {
		v.Set("severity", q.Severity)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Archived {
		v.Set("archived", "1")
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// CreateObservation logs a new observation.
func (s *Session) CreateObservation(ctx context.Context, req ObservationRequest) (*ObservationResponse, error) {
	var out ObservationResponse
	if err := s.postJSON(ctx, "/v1/observations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListObservations returns one page of the organization's observations.
func (s *Session) ListObservations(ctx context.Context, q ObservationListQuery) (*ObservationListResponse, error) {
	var out ObservationListResponse
	if err := s.getJSON(ctx, "/v1/observations"+q.encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetObservation fetches one observation by id.
func (s *Session) GetObservation(ctx context.Context, id string) (*ObservationResponse, error) {
	var out ObservationResponse
	if err := s.getJSON(ctx, "/v1/observations/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RectifyObservation submits the assigned action owner's fix report.
func (s *Session) RectifyObservation(ctx context.Context, id string, req RectifyRequest) (*ObservationResponse, error) {
	var out ObservationResponse
	if err := s.postJSON(ctx, "/v1/observations/"+url.PathEscape(id)+"/rectify", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyObservation rules on a rectification. Decision is "approve" or "reject".
func (s *Session) VerifyObservation(ctx context.Context, id, decision string) (*ObservationResponse, error) {
	var out ObservationResponse
	req := VerifyRequest{Decision: decision}
	if err := s.postJSON(ctx, "/v1/observations/"+url.PathEscape(id)+"/verify", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArchiveObservation hides an observation from default lists.
func (s *Session) ArchiveObservation(ctx context.Context, id string) (*ObservationResponse, error) {
	var out ObservationResponse
	if err := s.postJSON(ctx, "/v1/observations/"+url.PathEscape(id)+"/archive", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestoreObservation brings an archived observation back.
func (s *Session) RestoreObservation(ctx context.Context, id string) (*ObservationResponse, error) {
	var out ObservationResponse
	if err := s.postJSON(ctx, "/v1/observations/"+url.PathEscape(id)+"/restore", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteObservation permanently removes an observation. Superusers only.
func (s *Session) DeleteObservation(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/observations/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
