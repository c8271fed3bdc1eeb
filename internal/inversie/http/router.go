package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
	"github.com/go-chi/chi/v5/middleware"

	_ "github.com/aussiebroadwan/inversie/api/inversie" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	endpoints   []string

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	SessionService      *service.SessionService
	PotjeService        *service.PotjeService
	DecisionService     *service.DecisionService
	MoneyRequestService *service.MoneyRequestService
	TransactionService  *service.TransactionService
	SavingsGoalService  *service.SavingsGoalService
	NotificationService *service.NotificationService
	GuardianService     *service.GuardianService
}

// NewRouter creates a router. With trustProxy set the client address is
// taken from X-Forwarded-For / X-Real-IP before anything else runs.
func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, trustProxy bool) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	if trustProxy {
		r.middlewares = append(r.middlewares, middleware.RealIP)
	}
	r.middlewares = append(r.middlewares,
		slogx.HTTPMiddleware(r.logger),
		middleware.Recoverer,
	)

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBudget()
	r.registerDecisions()
	r.registerMoneyRequests()
	r.registerSavingsGoals()
	r.registerNotifications()
	r.registerGuardian()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Inversie API
//	@version					1.0.0
//	@description				Backend for Inversie, a budgeting app for people under financial guardianship (bewindvoering).
//	@description				Clients manage potjes, decisions, money requests and savings goals; their bewindvoerder approves or denies.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/inversie
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from /api/auth/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers pattern and records it for the /api index.
func (r *Router) handle(pattern string, h http.Handler) {
	r.Mux.Handle(pattern, h)
	if strings.Contains(pattern, " /api/") {
		r.endpoints = append(r.endpoints, pattern)
	}
}

// secured requires a live session and rate limits per user.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		AuthnMiddleware(r.SessionService),
		httpx.RateLimitByUser(limit),
	)
}

// guardian is secured plus the BEWINDVOERDER role.
func (r *Router) guardian(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		AuthnMiddleware(r.SessionService),
		requireGuardian(),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{SessionService: r.SessionService}

	// Login is limited per address and email so one address cannot walk the
	// PIN space of a single account.
	r.handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.handle("POST /api/auth/logout", r.secured(http.HandlerFunc(h.HandleLogout), httpx.ModerateLimit))
	r.handle("GET /api/auth/me", r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
	r.handle("POST /api/auth/pin/change", r.secured(http.HandlerFunc(h.HandleChangePIN), httpx.StrictLimit))
	r.handle("PUT /api/auth/settings", r.secured(http.HandlerFunc(h.HandleUpdateSettings), httpx.ModerateLimit))
}

func (r *Router) registerBudget() {
	potjes := &PotjesHandler{PotjeService: r.PotjeService}
	r.handle("GET /api/potjes", r.secured(http.HandlerFunc(potjes.HandleList), httpx.LenientLimit))
	r.handle("GET /api/potjes/{id}", r.secured(http.HandlerFunc(potjes.HandleGet), httpx.LenientLimit))

	transactions := &TransactionsHandler{TransactionService: r.TransactionService}
	r.handle("GET /api/transactions", r.secured(transactions, httpx.LenientLimit))
}

func (r *Router) registerDecisions() {
	h := &DecisionsHandler{DecisionService: r.DecisionService}
	r.handle("GET /api/decisions", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.handle("GET /api/decisions/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.handle("POST /api/decisions", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.handle("POST /api/decisions/{id}/reflection", r.secured(http.HandlerFunc(h.HandleReflection), httpx.ModerateLimit))
}

func (r *Router) registerMoneyRequests() {
	h := &MoneyRequestsHandler{MoneyRequestService: r.MoneyRequestService}
	r.handle("GET /api/money-requests", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.handle("POST /api/money-requests", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
}

func (r *Router) registerSavingsGoals() {
	h := &SavingsGoalsHandler{SavingsGoalService: r.SavingsGoalService}
	r.handle("GET /api/savings-goals", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.handle("POST /api/savings-goals", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.handle("PUT /api/savings-goals/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.handle("DELETE /api/savings-goals/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerNotifications() {
	h := &NotificationsHandler{NotificationService: r.NotificationService}
	r.handle("GET /api/notifications", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.handle("PUT /api/notifications/{id}/read", r.secured(http.HandlerFunc(h.HandleMarkRead), httpx.ModerateLimit))
	r.handle("PUT /api/notifications/read-all", r.secured(http.HandlerFunc(h.HandleMarkAllRead), httpx.ModerateLimit))
}

func (r *Router) registerGuardian() {
	h := &GuardianHandler{GuardianService: r.GuardianService}

	r.handle("GET /api/bewindvoerder/clients",
		r.guardian(http.HandlerFunc(h.HandleListClients), httpx.LenientLimit))
	r.handle("GET /api/bewindvoerder/clients/{clientId}/decisions",
		r.guardian(http.HandlerFunc(h.HandleClientDecisions), httpx.LenientLimit))
	r.handle("GET /api/bewindvoerder/clients/{clientId}/money-requests",
		r.guardian(http.HandlerFunc(h.HandleClientMoneyRequests), httpx.LenientLimit))

	r.handle("POST /api/bewindvoerder/decisions/{id}/approve",
		r.guardian(h.HandleDecideDecision(domain.StatusApproved), httpx.ModerateLimit))
	r.handle("POST /api/bewindvoerder/decisions/{id}/deny",
		r.guardian(h.HandleDecideDecision(domain.StatusDenied), httpx.ModerateLimit))
	r.handle("POST /api/bewindvoerder/money-requests/{id}/approve",
		r.guardian(h.HandleDecideMoneyRequest(domain.StatusApproved), httpx.ModerateLimit))
	r.handle("POST /api/bewindvoerder/money-requests/{id}/deny",
		r.guardian(h.HandleDecideMoneyRequest(domain.StatusDenied), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Probes are polled often, so they get the public profile.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(), httpx.RateLimitByIP(httpx.PublicLimit)))

	// Registered last so the index lists every route above.
	r.Mux.Handle("GET /api",
		httpx.Chain(IndexHandler(r.buildVersion, r.endpoints), httpx.RateLimitByIP(httpx.PublicLimit)))
}
