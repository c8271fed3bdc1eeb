package inversie_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and assertions shared by the Inversie end-to-end tests.
 * Every container starts with SEED_DEMO_DATA so the demo client and their
 * bewindvoerder exist.
 */

const (
	testImageName = "inversie-api-test:latest"

	demoClientEmail   = "jan@test.nl"
	demoGuardianEmail = "bewindvoerder@test.nl"
	demoPIN           = "1234"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Inversie Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Inversie Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/inversie/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

// relaxedRateLimits keeps the strict and moderate profiles out of the way of
// tests that log in many times.
var relaxedRateLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// setupContainer starts the API with relaxed rate limits plus extraEnv and
// returns its base URL.
func setupContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()

	env := map[string]string{}
	for k, v := range relaxedRateLimits {
		env[k] = v
	}
	for k, v := range extraEnv {
		env[k] = v
	}
	return startContainer(t, env)
}

// setupContainerWithDefaultRateLimits is for tests that check rate limiting
// itself.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"DATABASE_FILE":  "/data/inversie.db",
		"PEPPER_FILE":    "/data/pepper",
		"SEED_DEMO_DATA": "true",
		"ENV":            "test",
		"LOG_LEVEL":      "info",
		"LOG_FORMAT":     "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
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

func login(t *testing.T, client *inversiesdk.SDKClient, email, pin string) *inversiesdk.Session {
	t.Helper()
	session, err := client.Login(t.Context(), email, pin)
	require.NoError(t, err, "login as %s should succeed", email)
	require.NotEmpty(t, session.Token())
	return session
}

// assertAPIError checks the HTTP status and machine code of err.
func assertAPIError(t *testing.T, err error, status int, code string) *inversiesdk.APIError {
	t.Helper()
	require.Error(t, err)
	var apiErr *inversiesdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %s", apiErr.Message)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func findPotje(t *testing.T, potjes []inversiesdk.Potje, name string) inversiesdk.Potje {
	t.Helper()
	for _, p := range potjes {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("potje %q not found", name)
	return inversiesdk.Potje{}
}
