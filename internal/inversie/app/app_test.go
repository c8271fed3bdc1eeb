package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		Port:                 0,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		DatabaseFile:         filepath.Join(dir, "inversie.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		SessionTTL:           30 * time.Minute,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
		StrictTransitions:    true,
		SeedDemoData:         true,
	}
}

func TestApplicationServesSeededData(t *testing.T) {
	a, err := New(testConfig(t))
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := inversiesdk.NewSDKClient(srv.URL)

	jan, err := client.Login(ctx, service.DemoClientEmail, service.DemoPIN)
	require.NoError(t, err)

	potjes, err := jan.ListPotjes(ctx)
	require.NoError(t, err)
	assert.Len(t, potjes, 4)

	guardian, err := client.Login(ctx, service.DemoGuardianEmail, service.DemoPIN)
	require.NoError(t, err)
	clients, err := guardian.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, jan.User.ID, clients[0].ID)

	// Shutdown works on a server that never listened.
	require.NoError(t, a.Shutdown())
}

func TestApplicationSeedsOnce(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Shutdown())

	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Shutdown() })

	potjes, err := second.db.Potjes().ListPotjes(context.Background(), mustUserID(t, second, service.DemoClientEmail))
	require.NoError(t, err)
	assert.Len(t, potjes, 4)
}

func mustUserID(t *testing.T, a *Application, email string) string {
	t.Helper()
	u, err := a.db.Users().GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	return u.ID
}
