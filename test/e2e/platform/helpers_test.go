package platform_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/sitewatch/sitewatch/pkg/sitesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for platform end-to-end tests.
 * This includes container setup, tenant provisioning, and assertions.
 */

const (
	testImageName = "sitewatch-test:latest"

	ownerPassword  = "Owner123!pass"
	memberPassword = "Member123!pass"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building SiteWatch Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up SiteWatch Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/sitewatch/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupPlatformContainer starts the service in a container and returns the
// base URL. Rate limits are raised well above defaults so rapid-fire test
// requests do not trip them.
func setupPlatformContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"SITEWATCH_DATABASE_FILE": "/tmp/sitewatch.db",
			"SITEWATCH_PEPPER_FILE":   "/tmp/pepper",
			"SITEWATCH_ISSUER":        "sitewatch-test",
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// provisionTenant signs up a fresh organization and returns its owner
// session. Names are derived from the label to keep tenants distinct within
// one container.
func provisionTenant(t *testing.T, client *sitesdk.SDKClient, label string) (*sitesdk.SignupResponse, *sitesdk.Session) {
	t.Helper()

	signup, session, err := client.Signup(t.Context(), sitesdk.SignupRequest{
		OrganizationName:   label + " Pty Ltd",
		OrganizationDomain: label + ".example.com",
		Email:              "owner@" + label + ".example.com",
		Password:           ownerPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, signup)
	require.NotEmpty(t, signup.AccessToken)
	require.NotEmpty(t, signup.Organization.ID)

	return signup, session
}

// inviteMember mints and redeems an invite, returning the member's session.
func inviteMember(t *testing.T, client *sitesdk.SDKClient, owner *sitesdk.Session, email, role string) (*sitesdk.SessionResponse, *sitesdk.Session) {
	t.Helper()

	invite, err := owner.MintInvite(t.Context(), sitesdk.InviteRequest{Email: email, Role: role})
	require.NoError(t, err)
	require.NotEmpty(t, invite.InviteToken)

	accepted, session, err := client.AcceptInvite(t.Context(), invite.InviteToken, memberPassword)
	require.NoError(t, err)
	require.Equal(t, email, accepted.User.Email)

	return accepted, session
}

// assertAPIErrorCode verifies err is an APIError carrying the given code.
func assertAPIErrorCode(t *testing.T, err error, code string, context string) {
	t.Helper()
	require.Error(t, err, context)

	apiErr, ok := err.(*sitesdk.APIError)
	require.True(t, ok, "%s - expected *sitesdk.APIError, got %T: %v", context, err, err)
	require.Equal(t, code, apiErr.Code, "%s - unexpected error code", context)
}
