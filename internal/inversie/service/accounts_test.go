package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccountService{Store: st}

	u, err := svc.CreateUser(ctx, NewUser{
		Type: domain.UserTypeClient, Email: " Kim@Test.NL ", FirstName: "Kim", LastName: "Peeters", PIN: "2468",
	})
	require.NoError(t, err)
	assert.Equal(t, "kim@test.nl", u.Email)
	assert.Equal(t, domain.DefaultLanguage, u.Language)
	assert.Equal(t, domain.TextSizeMedium, u.TextSize)
	assert.NotContains(t, u.PINHash, "2468")

	_, err = svc.CreateUser(ctx, NewUser{
		Type: domain.UserTypeClient, Email: "kim@test.nl", FirstName: "Kim", LastName: "Peeters", PIN: "2468",
	})
	assert.ErrorIs(t, err, ErrConflict)

	invalid := map[string]NewUser{
		"email":     {Type: domain.UserTypeClient, Email: "not an email", FirstName: "A", LastName: "B", PIN: "1234"},
		"type":      {Type: "ADMIN", Email: "a@test.nl", FirstName: "A", LastName: "B", PIN: "1234"},
		"last name": {Type: domain.UserTypeClient, Email: "a@test.nl", FirstName: "A", PIN: "1234"},
		"pin":       {Type: domain.UserTypeClient, Email: "a@test.nl", FirstName: "A", LastName: "B", PIN: "12"},
	}
	for name, in := range invalid {
		_, err := svc.CreateUser(ctx, in)
		assert.ErrorIs(t, err, ErrValidation, name)
	}
}

func TestLinkGuardian(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := &AccountService{Store: f.st}

	assert.ErrorIs(t, svc.LinkGuardian(ctx, "jan@test.nl", "bewindvoerder@test.nl"), ErrConflict)
	assert.ErrorIs(t, svc.LinkGuardian(ctx, "bewindvoerder@test.nl", "jan@test.nl"), ErrValidation)
	assert.ErrorIs(t, svc.LinkGuardian(ctx, "nobody@test.nl", "ander@test.nl"), ErrNotFound)

	require.NoError(t, svc.LinkGuardian(ctx, "piet@test.nl", "ander@test.nl"))
	ok, err := f.st.Guardians().RelationExists(ctx, f.piet.ID, f.stranger.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSeedDemoData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	clock := newFakeClock()
	log := slogx.Discard()

	seeded, err := SeedDemoData(ctx, st, clock.Clock(), log)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = SeedDemoData(ctx, st, clock.Clock(), log)
	require.NoError(t, err)
	assert.False(t, seeded)

	sessions := &SessionService{Store: st, Clock: clock.Clock()}
	login, err := sessions.Authenticate(ctx, DemoClientEmail, DemoPIN)
	require.NoError(t, err)
	_, err = sessions.Authenticate(ctx, DemoGuardianEmail, DemoPIN)
	require.NoError(t, err)

	potjes, err := st.Potjes().ListPotjes(ctx, login.User.ID)
	require.NoError(t, err)
	require.Len(t, potjes, 4)
	assert.Equal(t, "Boodschappen", potjes[0].Name)
	assert.Equal(t, "Vrije tijd", potjes[3].Name)

	txs, err := st.Transactions().ListTransactions(ctx, login.User.ID, domain.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txs, len(demoTransactions))
	assert.Equal(t, "412.35", txs[0].BalanceAfter.StringFixed(2))

	goals, err := st.SavingsGoals().ListSavingsGoals(ctx, login.User.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Progress().Equal(decimal.NewFromInt(30)))
}
