package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/pkg/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePIN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pin   string
		valid bool
	}{
		{"1234", true},
		{"123456", true},
		{"0000", true},
		{"123", false},
		{"1234567", false},
		{"12a4", false},
		{"12 34", false},
		{"", false},
		{"١٢٣٤", false},
	}

	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			t.Parallel()
			err := ValidatePIN(tt.pin)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}

	t.Run("success issues a thirty minute session", func(t *testing.T) {
		login, err := svc.Authenticate(ctx, "jan@test.nl", "1234")
		require.NoError(t, err)

		assert.NotEmpty(t, login.Token)
		assert.Equal(t, f.jan.ID, login.User.ID)
		assert.WithinDuration(t, f.clock.Now().Add(DefaultSessionTTL), login.ExpiresAt, time.Second)
	})

	t.Run("email is matched case insensitively", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "  JAN@Test.NL ", "1234")
		require.NoError(t, err)
	})

	t.Run("unknown email and wrong pin are indistinguishable", func(t *testing.T) {
		_, errUnknown := svc.Authenticate(ctx, "nobody@test.nl", "1234")
		_, errWrong := svc.Authenticate(ctx, "jan@test.nl", "9999")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("concurrent sessions are independent", func(t *testing.T) {
		a, err := svc.Authenticate(ctx, "jan@test.nl", "1234")
		require.NoError(t, err)
		b, err := svc.Authenticate(ctx, "jan@test.nl", "1234")
		require.NoError(t, err)
		assert.NotEqual(t, a.Token, b.Token)

		pa, err := svc.ValidateSession(ctx, a.Token)
		require.NoError(t, err)
		require.NoError(t, svc.TerminateSession(ctx, pa.Session.ID))

		_, err = svc.ValidateSession(ctx, b.Token)
		assert.NoError(t, err)
	})
}

func TestValidateSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}

		_, err := svc.ValidateSession(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}

		_, err := svc.ValidateSession(ctx, "not-a-real-token")
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("expiry", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}

		login, err := svc.Authenticate(ctx, "jan@test.nl", "1234")
		require.NoError(t, err)

		f.clock.Advance(29 * time.Minute)
		p, err := svc.ValidateSession(ctx, login.Token)
		require.NoError(t, err)
		assert.Equal(t, f.jan.ID, p.User.ID)
		assert.False(t, p.IsGuardian())

		f.clock.Advance(time.Minute)
		_, err = svc.ValidateSession(ctx, login.Token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("logout is idempotent", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}

		login, err := svc.Authenticate(ctx, "bewindvoerder@test.nl", "1234")
		require.NoError(t, err)
		p, err := svc.ValidateSession(ctx, login.Token)
		require.NoError(t, err)
		assert.True(t, p.IsGuardian())

		require.NoError(t, svc.TerminateSession(ctx, p.Session.ID))
		require.NoError(t, svc.TerminateSession(ctx, p.Session.ID))

		_, err = svc.ValidateSession(ctx, login.Token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})
}

func TestChangePIN(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	login := func(t *testing.T, svc *SessionService, pin string) Principal {
		t.Helper()
		l, err := svc.Authenticate(ctx, "jan@test.nl", pin)
		require.NoError(t, err)
		p, err := svc.ValidateSession(ctx, l.Token)
		require.NoError(t, err)
		return p
	}

	t.Run("wrong current pin leaves the hash alone", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}
		p := login(t, svc, "1234")

		err := svc.ChangePIN(ctx, p, "0000", "5555")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		u, err := f.st.Users().GetUserByID(ctx, f.jan.ID)
		require.NoError(t, err)
		assert.Equal(t, f.jan.PINHash, u.PINHash)

		_, err = svc.Authenticate(ctx, "jan@test.nl", "1234")
		assert.NoError(t, err)
	})

	t.Run("new pin must satisfy the policy", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}
		p := login(t, svc, "1234")

		for _, bad := range []string{"12", "1234567", "abcd"} {
			assert.ErrorIs(t, svc.ChangePIN(ctx, p, "1234", bad), ErrValidation, bad)
		}
		_, err := svc.Authenticate(ctx, "jan@test.nl", "1234")
		assert.NoError(t, err)
	})

	t.Run("success keeps other sessions by default", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}

		other, err := svc.Authenticate(ctx, "jan@test.nl", "1234")
		require.NoError(t, err)
		p := login(t, svc, "1234")

		require.NoError(t, svc.ChangePIN(ctx, p, "1234", "567890"))

		_, err = svc.Authenticate(ctx, "jan@test.nl", "1234")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = svc.Authenticate(ctx, "jan@test.nl", "567890")
		assert.NoError(t, err)

		_, err = svc.ValidateSession(ctx, other.Token)
		assert.NoError(t, err)

		u, err := f.st.Users().GetUserByID(ctx, f.jan.ID)
		require.NoError(t, err)
		assert.NoError(t, cryptox.VerifyPIN("567890", u.PINHash))
	})

	t.Run("revocation drops every other session", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		svc := &SessionService{Store: f.st, Clock: f.clock.Clock(), RevokeOnPINChange: true}

		other, err := svc.Authenticate(ctx, "jan@test.nl", "1234")
		require.NoError(t, err)
		p := login(t, svc, "1234")

		require.NoError(t, svc.ChangePIN(ctx, p, "1234", "4321"))

		_, err = svc.ValidateSession(ctx, other.Token)
		assert.ErrorIs(t, err, ErrSessionInvalid)

		still, err := f.st.Sessions().GetLiveSession(ctx, p.Session.TokenHash, f.clock.Now())
		require.NoError(t, err)
		assert.Equal(t, p.Session.ID, still.ID)
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	svc := &SessionService{Store: f.st, Clock: f.clock.Clock()}

	size := domain.TextSizeLarge
	contrast := true
	u, err := svc.UpdateSettings(ctx, f.jan.ID, domain.UserSettings{TextSize: &size, HighContrast: &contrast})
	require.NoError(t, err)
	assert.Equal(t, domain.TextSizeLarge, u.TextSize)
	assert.True(t, u.HighContrast)
	assert.Equal(t, domain.DefaultLanguage, u.Language)

	stored, err := f.st.Users().GetUserByID(ctx, f.jan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TextSizeLarge, stored.TextSize)
	assert.True(t, stored.HighContrast)
	assert.False(t, stored.BiometricsEnabled)

	empty := "  "
	_, err = svc.UpdateSettings(ctx, f.jan.ID, domain.UserSettings{Language: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}
