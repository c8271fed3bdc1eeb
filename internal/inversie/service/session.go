package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/cryptox"
	"github.com/aussiebroadwan/inversie/pkg/idx"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
)

// DefaultSessionTTL is how long a login stays valid.
const DefaultSessionTTL = 30 * time.Minute

// Login is the result of a successful Authenticate.
type Login struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// SessionService owns user credentials and sessions. It is the only
// component that decides who a request is acting as.
type SessionService struct {
	Store store.Store
	TTL   time.Duration
	Clock Clock

	// RevokeOnPINChange deletes every other session of the user after a
	// successful PIN change.
	RevokeOnPINChange bool

	dummyOnce sync.Once
	dummyHash string
}

// ValidatePIN enforces the PIN policy: 4 to 6 ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return fmt.Errorf("%w: pin must be 4 to 6 digits", ErrValidation)
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return fmt.Errorf("%w: pin must be 4 to 6 digits", ErrValidation)
		}
	}
	return nil
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// burnDummyHash spends the same argon2 work as a real verification so an
// unknown email takes as long as a wrong PIN.
func (s *SessionService) burnDummyHash(pin string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = cryptox.HashPIN("000000")
	})
	if s.dummyHash != "" {
		_ = cryptox.VerifyPIN(pin, s.dummyHash)
	}
}

// Authenticate exchanges email and PIN for a new session. Unknown email and
// wrong PIN both return ErrInvalidCredentials.
func (s *SessionService) Authenticate(ctx context.Context, email, pin string) (Login, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.burnDummyHash(pin)
			log.Info("login failed", slog.String("reason", "unknown_email"))
			return Login{}, ErrInvalidCredentials
		}
		return Login{}, err
	}

	if err := cryptox.VerifyPIN(pin, user.PINHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			log.Error("stored pin hash unusable", slog.String("user_id", user.ID), slogx.Err(err))
		}
		log.Info("login failed", slog.String("reason", "bad_pin"), slog.String("user_id", user.ID))
		return Login{}, ErrInvalidCredentials
	}

	token, err := cryptox.GenerateToken(cryptox.SessionTokenSize)
	if err != nil {
		return Login{}, err
	}

	now := s.Clock.now()
	session := domain.Session{
		ID:        idx.NewAt(now).String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return Login{}, fmt.Errorf("create session: %w", err)
	}

	log.Info("login succeeded", slog.String("user_id", user.ID), slog.String("session_id", session.ID))
	return Login{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// ValidateSession resolves a bearer token to its principal. An empty token is
// ErrUnauthenticated; an unknown, deleted or expired one is ErrSessionInvalid.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrUnauthenticated
	}

	session, err := s.Store.Sessions().GetLiveSession(ctx, cryptox.FingerprintToken(token), s.Clock.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Principal{}, ErrSessionInvalid
		}
		return Principal{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Principal{}, ErrSessionInvalid
		}
		return Principal{}, err
	}

	return Principal{User: user, Session: session}, nil
}

// TerminateSession deletes the session. Unknown ids succeed.
func (s *SessionService) TerminateSession(ctx context.Context, sessionID string) error {
	return s.Store.Sessions().DeleteSession(ctx, sessionID)
}

// ChangePIN re-verifies currentPIN before storing newPIN.
func (s *SessionService) ChangePIN(ctx context.Context, p Principal, currentPIN, newPIN string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, p.User.ID)
	if err != nil {
		return notFound(err, "user")
	}
	if err := cryptox.VerifyPIN(currentPIN, user.PINHash); err != nil {
		log.Info("pin change rejected", slog.String("reason", "bad_current_pin"))
		return ErrInvalidCredentials
	}
	if err := ValidatePIN(newPIN); err != nil {
		return err
	}

	hash, err := cryptox.HashPIN(newPIN)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePINHash(ctx, user.ID, hash, s.Clock.now()); err != nil {
			return err
		}
		if !s.RevokeOnPINChange {
			return nil
		}
		n, err := tx.Sessions().DeleteOtherSessions(ctx, user.ID, p.Session.ID)
		if err != nil {
			return err
		}
		log.Info("revoked sessions after pin change", slog.Int64("count", n))
		return nil
	})
}

// UpdateSettings applies a partial preference update and returns the
// stored user.
func (s *SessionService) UpdateSettings(ctx context.Context, userID string, in domain.UserSettings) (domain.User, error) {
	if in.Language != nil {
		lang := strings.TrimSpace(*in.Language)
		if lang == "" || len(lang) > 16 {
			return domain.User{}, fmt.Errorf("%w: language", ErrValidation)
		}
		in.Language = &lang
	}

	var out domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return notFound(err, "user")
		}
		in.Apply(&user)
		user.UpdatedAt = s.Clock.now()
		if err := tx.Users().UpdateSettings(ctx, user); err != nil {
			return err
		}
		out = user
		return nil
	})
	return out, err
}
