package http

import (
	"net/http"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
)

// AuthnMiddleware resolves the bearer token to a principal and stores it in
// the request context. Requests without a live session never reach next.
func AuthnMiddleware(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := httpx.BearerToken(r)

			p, err := sessions.ValidateSession(r.Context(), token)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}

			ctx := service.WithPrincipal(r.Context(), p)
			ctx = httpx.ContextWithIdentity(ctx, p.User.ID, string(p.User.Type))
			ctx = slogx.WithAttrs(ctx, "user_id", p.User.ID, "user_type", string(p.User.Type))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireGuardian only admits BEWINDVOERDER principals.
func requireGuardian() httpx.Middleware {
	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inversiesdk.ErrForbidden.WithMessage("Bewindvoerder role required").WriteError(w)
	})
	return httpx.RequireAnyRole(deny, string(domain.UserTypeBewindvoerder))
}

// principal returns the caller stored by AuthnMiddleware. Handlers behind the
// middleware can rely on it being present.
func principal(r *http.Request) service.Principal {
	p, _ := service.PrincipalFromContext(r.Context())
	return p
}
