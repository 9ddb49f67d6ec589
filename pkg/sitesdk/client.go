package sitesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SDKClient is the entry point for talking to a SiteWatch deployment. It
// covers the unauthenticated surface; successful signup, login, and invite
// acceptance return a Session for everything behind the bearer token.
type SDKClient struct {
	// BaseURL is the service root, e.g. "http://localhost:8080"
	BaseURL string

	// HTTPClient used for all requests. Replaceable for testing.
	HTTPClient *http.Client
}

// NewSDKClient creates a client with sane defaults.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Signup provisions a new organization with its owning account and returns
// the response alongside an authenticated session for the owner.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, *Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/signup", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, nil, err
	}

	var out SignupResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, nil, err
	}
	return &out, c.SessionFromToken(out.AccessToken), nil
}

// Login exchanges credentials for a session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*SessionResponse, *Session, error) {
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, nil, err
	}
	return &out, c.SessionFromToken(out.AccessToken), nil
}

// AcceptInvite redeems an invite token, creating the member account.
func (c *SDKClient) AcceptInvite(ctx context.Context, token, password string) (*SessionResponse, *Session, error) {
	body, err := json.Marshal(AcceptInviteRequest{Token: token, Password: password})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invites/accept", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, nil, err
	}
	return &out, c.SessionFromToken(out.AccessToken), nil
}

// SubmitDemoRequest posts the public request-a-demo form.
func (c *SDKClient) SubmitDemoRequest(ctx context.Context, req DemoRequestRequest) (*DemoRequestResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/demo-requests", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out DemoRequestResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez checks the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz checks the readiness probe.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SessionFromToken wraps an already issued access token, for callers that
// persisted one across restarts.
func (c *SDKClient) SessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}
