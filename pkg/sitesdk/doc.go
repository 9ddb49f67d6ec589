/*
Package sitesdk provides a typed client SDK for the SiteWatch platform API.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations (signup, login, invite
    acceptance, demo requests, health probes) and creates Sessions
  - Session: Provides authenticated operations against the tenant surface

Create an SDKClient to interact with public endpoints:

	client := sitesdk.NewSDKClient("https://sitewatch.example.com")

	// Check service health
	health, err := client.Livez(ctx)

	// Provision an organization and get an owner session in one call
	signup, session, err := client.Signup(ctx, sitesdk.SignupRequest{
		OrganizationName:   "Acme Construction",
		OrganizationDomain: "acme.example.com",
		Email:              "owner@acme.example.com",
		Password:           "a strong password",
	})

Use the Session for everything behind the bearer token:

	// Invite a team member (managers only)
	invite, err := session.MintInvite(ctx, sitesdk.InviteRequest{
		Email: "worker@acme.example.com",
		Role:  "action_owner",
	})

	// Log an observation and walk it through the workflow
	obs, err := session.CreateObservation(ctx, sitesdk.ObservationRequest{
		Title:      "Missing guard rail on level 2",
		Severity:   "HIGH",
		AssignedTo: workerID,
	})
	obs, err = session.VerifyObservation(ctx, obs.ID, "approve")

Sessions do not refresh tokens; when one expires, log in again.

# Error Handling

Failures surface as *APIError carrying the HTTP status plus the service's
machine-readable code:

	_, err := session.CreateObservation(ctx, req)
	var apiErr *sitesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == sitesdk.ErrorCodeCapacityExceeded {
		// plan ceiling reached, prompt an upgrade
	}
*/
package sitesdk
