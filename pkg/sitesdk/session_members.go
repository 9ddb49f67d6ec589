package sitesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListMembers returns the caller's organization's user accounts. Managers
// only.
func (s *Session) ListMembers(ctx context.Context) (*MemberListResponse, error) {
	var out MemberListResponse
	if err := s.getJSON(ctx, "/v1/members", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetMemberRoles replaces a member's role set. Managers only.
func (s *Session) SetMemberRoles(ctx context.Context, userID string, roles []string) (*UserResponse, error) {
	var out UserResponse
	path := "/v1/members/" + url.PathEscape(userID) + "/roles"
	if err := s.postJSON(ctx, path, UpdateMemberRolesRequest{Roles: roles}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateMember disables a member's account. Managers only; a manager
// cannot deactivate themselves.
func (s *Session) DeactivateMember(ctx context.Context, userID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/members/"+url.PathEscape(userID)+"/deactivate", nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
