package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

// Principal is the authenticated caller, resolved once per request by
// SessionService.ValidateSession.
type Principal struct {
	User    domain.User
	Session domain.Session
}

// IsGuardian reports whether the caller is a BEWINDVOERDER.
func (p Principal) IsGuardian() bool {
	return p.User.Type == domain.UserTypeBewindvoerder
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Clock returns the current time. Services default to time.Now when unset.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
