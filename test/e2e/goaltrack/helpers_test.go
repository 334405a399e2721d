package goaltrack_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for goaltrack end-to-end tests:
 * container setup, account bootstrapping, assertions.
 */

const (
	testImageName = "goaltrack-test:latest"

	testUsername = "alice"
	testPassword = "S3cret!pw"
	testEmail    = "alice@example.com"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building goaltrack Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up goaltrack Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/goaltrack/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts the service in a container and returns the base URL.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"GOALTRACK_ISSUER": "goaltrack-e2e",
			"STORE_DRIVER":     "sqlite",
			"DATABASE_FILE":    "/goaltrack.db",
			"PEPPER_FILE":      "/pepper",
			"ENV":              "test",
			"LOG_LEVEL":        "info",
			"LOG_FORMAT":       "json",
			// Relax the strict per-IP limits so rapid test requests don't
			// trip them; the rate limit test spins up its own container
			"RATELIMIT_STRICT_REQUESTS": "1000",
			"RATELIMIT_STRICT_BURST":    "1000",
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

// setupContainerWithDefaultRateLimits starts the service with PRODUCTION rate
// limits, specifically for verifying that limiting works.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"GOALTRACK_ISSUER": "goaltrack-e2e",
			"STORE_DRIVER":     "sqlite",
			"DATABASE_FILE":    "/goaltrack.db",
			"PEPPER_FILE":      "/pepper",
			"ENV":              "test",
			"LOG_LEVEL":        "info",
			"LOG_FORMAT":       "json",
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

// registerAndLogin creates the standard test account and returns an
// authenticated session.
func registerAndLogin(t *testing.T, client *goalsdk.Client) *goalsdk.Session {
	t.Helper()
	ctx := context.Background()

	session := goalsdk.NewSession(client, nil)
	require.NoError(t, session.BeginRegistration())
	require.NoError(t, session.Register(ctx, testUsername, testPassword, testEmail))
	require.NoError(t, session.Login(ctx, testUsername, testPassword))

	return session
}

// requireStatus asserts an error is an APIError with the given HTTP status.
func requireStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *goalsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, status, apiErr.StatusCode, context)
}
