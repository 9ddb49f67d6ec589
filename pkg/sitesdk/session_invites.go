package sitesdk

import (
	"context"
	"net/http"
)

// MintInvite creates a single-use invite token. Managers only. The raw token
// appears in the response exactly once; store it or lose it.
func (s *Session) MintInvite(ctx context.Context, req InviteRequest) (*InviteResponse, error) {
	var out InviteResponse
	if err := s.postJSON(ctx, "/v1/invites", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvites returns the organization's minted invites without tokens.
func (s *Session) ListInvites(ctx context.Context) (*InviteListResponse, error) {
	var out InviteListResponse
	if err := s.getJSON(ctx, "/v1/invites", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
