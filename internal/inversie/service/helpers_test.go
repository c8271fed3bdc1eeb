package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/internal/inversie/store/drivers/sqlite"
	"github.com/aussiebroadwan/inversie/pkg/cryptox"
	"github.com/aussiebroadwan/inversie/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "inversie-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Clock ticks one millisecond per read so rows created back to back keep a
// stable order.
func (c *fakeClock) Clock() Clock {
	return func() time.Time {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.t = c.t.Add(time.Millisecond)
		return c.t
	}
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "service.db")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// fixture is a small world: client Jan with a potje, his guardian, an
// unrelated guardian and a second client.
type fixture struct {
	st       store.Store
	clock    *fakeClock
	jan      domain.User
	piet     domain.User
	guardian domain.User
	stranger domain.User
	potje    domain.Potje
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{st: newTestStore(t), clock: newFakeClock()}
	accounts := &AccountService{Store: f.st, Clock: f.clock.Clock()}

	var err error
	f.jan, err = accounts.CreateUser(ctx, NewUser{Type: domain.UserTypeClient, Email: "jan@test.nl", FirstName: "Jan", LastName: "de Vries", PIN: "1234"})
	require.NoError(t, err)
	f.piet, err = accounts.CreateUser(ctx, NewUser{Type: domain.UserTypeClient, Email: "piet@test.nl", FirstName: "Piet", LastName: "Jansen", PIN: "5678"})
	require.NoError(t, err)
	f.guardian, err = accounts.CreateUser(ctx, NewUser{Type: domain.UserTypeBewindvoerder, Email: "bewindvoerder@test.nl", FirstName: "Sanne", LastName: "Bakker", PIN: "1234"})
	require.NoError(t, err)
	f.stranger, err = accounts.CreateUser(ctx, NewUser{Type: domain.UserTypeBewindvoerder, Email: "ander@test.nl", FirstName: "Ali", LastName: "Yilmaz", PIN: "1234"})
	require.NoError(t, err)
	require.NoError(t, accounts.LinkGuardian(ctx, "jan@test.nl", "bewindvoerder@test.nl"))

	now := f.clock.Now()
	f.potje = domain.Potje{
		ID:            idx.NewAt(now).String(),
		ClientID:      f.jan.ID,
		Name:          "Kleding",
		MonthlyBudget: decimal.RequireFromString("75.00"),
		CurrentSpent:  decimal.Zero,
		ResetDay:      1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, f.st.Potjes().CreatePotje(ctx, f.potje))
	return f
}

func principal(u domain.User) Principal {
	return Principal{User: u}
}

func (f *fixture) notificationsFor(t *testing.T, userID string) []domain.Notification {
	t.Helper()
	list, err := f.st.Notifications().ListNotifications(context.Background(), userID)
	require.NoError(t, err)
	return list
}

func (f *fixture) pendingDecision(t *testing.T) domain.Decision {
	t.Helper()
	svc := &DecisionService{Store: f.st, Clock: f.clock.Clock()}
	d, err := svc.Create(context.Background(), f.jan.ID, NewDecision{
		Title:   "Winterjas",
		Amount:  decimal.NewFromInt(50),
		PotjeID: f.potje.ID,
	})
	require.NoError(t, err)
	return d
}
